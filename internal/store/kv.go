package store

// KV is the raw key-addressable medium underneath the record store.
// Get reports ok=false when the key has never been written. Values are
// opaque JSON documents; the store layers collection semantics on top.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
