package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CatalogKey returns the cache key for the full class catalog listing.
func (r *CacheKeyStruct) CatalogKey() string {
	return "catalog:classes"
}

// SeatChannel returns the Redis PubSub channel name for seat-count updates.
func (r *CacheKeyStruct) SeatChannel() string {
	return "catalog:seats"
}

var CacheKey = NewCacheKeyStruct()
