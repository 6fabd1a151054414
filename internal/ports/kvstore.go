package ports

// KVStore is a flat string key-value store. Get reports ok=false for a
// missing key rather than an error.
type KVStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error

	// Close releases any underlying resources
	Close() error
}

// ChangeSource is implemented by stores whose backing files can be
// changed by another process
type ChangeSource interface {
	// WatchPaths returns the files or directories that hold the data
	WatchPaths() []string
}
