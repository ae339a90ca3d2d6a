package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Analytics results are cached per user; every transaction write clears
// that user's keys. Keys are tracked alongside the cache because ristretto
// cannot enumerate or delete by prefix.
var (
	Cache              *ristretto.Cache
	analyticsCacheKeys = struct {
		sync.Mutex
		m map[string]map[string]struct{} // userID -> cache keys
	}{m: make(map[string]map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func GetAnalyticsCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

func SetAnalyticsCache(userID, cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	analyticsCacheKeys.Lock()
	keys, ok := analyticsCacheKeys.m[userID]
	if !ok {
		keys = make(map[string]struct{})
		analyticsCacheKeys.m[userID] = keys
	}
	keys[cacheKey] = struct{}{}
	analyticsCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAnalyticsCache(userID string) {
	if Cache == nil {
		return
	}
	analyticsCacheKeys.Lock()
	for key := range analyticsCacheKeys.m[userID] {
		Cache.Del(key)
	}
	delete(analyticsCacheKeys.m, userID)
	analyticsCacheKeys.Unlock()
}
