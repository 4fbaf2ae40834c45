package market

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/metrics"
)

// priceCache holds recent LatestPrices results keyed by crop and limit.
// Each crop carries a generation bumped on invalidation so a read that
// started before a write cannot store its stale result afterwards.
type priceCache struct {
	lru *expirable.LRU[string, []domain.MarketPrice]

	mu   sync.Mutex
	gens map[string]uint64
}

func newPriceCache(size int, ttl time.Duration) *priceCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &priceCache{
		lru:  expirable.NewLRU[string, []domain.MarketPrice](size, nil, ttl),
		gens: make(map[string]uint64),
	}
}

func cacheKey(crop string, limit int) string {
	return crop + ":" + strconv.Itoa(limit)
}

func (c *priceCache) Get(crop string, limit int) ([]domain.MarketPrice, bool) {
	prices, ok := c.lru.Get(cacheKey(crop, limit))
	if ok {
		metrics.MarketPriceCache.WithLabelValues(metrics.CacheHit).Inc()
	} else {
		metrics.MarketPriceCache.WithLabelValues(metrics.CacheMiss).Inc()
	}
	return prices, ok
}

func (c *priceCache) Set(crop string, limit int, prices []domain.MarketPrice) {
	c.lru.Add(cacheKey(crop, limit), prices)
}

// Generation returns the current invalidation count for crop
func (c *priceCache) Generation(crop string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[crop]
}

// SetIfCurrent stores prices only when crop has not been invalidated since gen was read
func (c *priceCache) SetIfCurrent(crop string, limit int, gen uint64, prices []domain.MarketPrice) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[crop] != gen {
		return false
	}
	c.lru.Add(cacheKey(crop, limit), prices)
	return true
}

// InvalidateCrop drops every cached limit for crop
func (c *priceCache) InvalidateCrop(crop string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[crop]++

	prefix := crop + ":"
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
