package memory

import "kanbodoro/internal/ports"

// KV implements ports.KVStore in process memory. Nothing survives the
// process; used for --store memory and as a test fixture.
type KV struct {
	data map[string]string
}

// Ensure KV implements KVStore
var _ ports.KVStore = (*KV)(nil)

// NewKV creates an empty in-memory store
func NewKV() *KV {
	return &KV{data: make(map[string]string)}
}

// Get returns the value stored under key
func (k *KV) Get(key string) (string, bool, error) {
	v, ok := k.data[key]
	return v, ok, nil
}

// Set stores value under key
func (k *KV) Set(key, value string) error {
	k.data[key] = value
	return nil
}

// Remove deletes key; missing keys are not an error
func (k *KV) Remove(key string) error {
	delete(k.data, key)
	return nil
}

// Close is a no-op
func (k *KV) Close() error {
	return nil
}

// Len returns the number of stored keys
func (k *KV) Len() int {
	return len(k.data)
}
