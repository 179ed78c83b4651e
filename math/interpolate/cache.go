package interpolate

import (
	"math"
)

// CacheStats describes the memoization state of a table. Len is the number
// of cached results; Hits and Misses count lookups that did and did not find
// a cached result.
type CacheStats struct {
	Hits, Misses, Len int
}

// Queries are keyed by their IEEE-754 bit patterns, so equal queries always
// hit and queries which differ in any bit never collide. This includes
// 0 and -0, which are cached separately.

type biKey struct {
	x, y uint64
}

type cache struct {
	vals         map[uint64]float64
	hits, misses int
}

func newCache() *cache {
	return &cache{vals: map[uint64]float64{}}
}

func (c *cache) get(x float64) (val float64, key uint64, ok bool) {
	key = math.Float64bits(x)
	val, ok = c.vals[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return val, key, ok
}

func (c *cache) put(key uint64, val float64) { c.vals[key] = val }

func (c *cache) stats() CacheStats {
	return CacheStats{Hits: c.hits, Misses: c.misses, Len: len(c.vals)}
}

type biCache struct {
	vals         map[biKey]float64
	hits, misses int
}

func newBiCache() *biCache {
	return &biCache{vals: map[biKey]float64{}}
}

func (c *biCache) get(x, y float64) (val float64, key biKey, ok bool) {
	key = biKey{math.Float64bits(x), math.Float64bits(y)}
	val, ok = c.vals[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return val, key, ok
}

func (c *biCache) put(key biKey, val float64) { c.vals[key] = val }

func (c *biCache) stats() CacheStats {
	return CacheStats{Hits: c.hits, Misses: c.misses, Len: len(c.vals)}
}
