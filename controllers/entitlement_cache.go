package controllers

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// EntitlementCache memoizes per-user entitlement results between
// requests. It is an optimization only: behavior must be identical with
// the no-op implementation installed.
type EntitlementCache interface {
	Get(userID string) (Entitlement, bool)
	Add(userID string, ent Entitlement)
	Purge()
}

// EntitlementResults is the injected cache instance. main wires an LRU
// with the configured TTL; the zero-TTL default keeps caching off until
// then, and tests swap in whichever implementation they need.
var EntitlementResults EntitlementCache = NewEntitlementCache(0)

// entitlementCacheSize bounds how many user results are held at once.
const entitlementCacheSize = 4096

// NewEntitlementCache returns a TTL-bound cache, or a no-op cache when
// ttl <= 0 (caching disabled).
func NewEntitlementCache(ttl time.Duration) EntitlementCache {
	if ttl <= 0 {
		return noopEntitlementCache{}
	}
	return &lruEntitlementCache{
		lru: expirable.NewLRU[string, Entitlement](entitlementCacheSize, nil, ttl),
	}
}

type lruEntitlementCache struct {
	lru *expirable.LRU[string, Entitlement]
}

func (c *lruEntitlementCache) Get(userID string) (Entitlement, bool) {
	return c.lru.Get(userID)
}

func (c *lruEntitlementCache) Add(userID string, ent Entitlement) {
	c.lru.Add(userID, ent)
}

func (c *lruEntitlementCache) Purge() {
	c.lru.Purge()
}

type noopEntitlementCache struct{}

func (noopEntitlementCache) Get(string) (Entitlement, bool) { return Entitlement{}, false }
func (noopEntitlementCache) Add(string, Entitlement)        {}
func (noopEntitlementCache) Purge()                         {}
