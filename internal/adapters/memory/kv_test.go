package memory

import "testing"

func TestKV(t *testing.T) {
	kv := NewKV()

	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("expected empty store")
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, ok, _ := kv.Get("k"); !ok || got != "v" {
		t.Errorf("expected v, got %q (ok=%v)", got, ok)
	}
	if kv.Len() != 1 {
		t.Errorf("expected 1 key, got %d", kv.Len())
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if kv.Len() != 0 {
		t.Errorf("expected 0 keys, got %d", kv.Len())
	}
}
