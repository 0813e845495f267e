package port

// Cache is a bounded key-value store shared between goroutines.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	// Set stores value under key; a full cache evicts its least recently used entry.
	Set(key K, value V)
	Remove(key K)
	Len() int
}
