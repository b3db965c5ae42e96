package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
	"github.com/stretchr/testify/assert"
)

func useEntitlementCache(t *testing.T, cache EntitlementCache) {
	t.Helper()
	prev := EntitlementResults
	EntitlementResults = cache
	t.Cleanup(func() { EntitlementResults = prev })
}

func TestCachedEntitlementMemoizesResult(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixedClock(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	orders := &fakeOrderStore{orders: []models.Order{
		paidOrder("user-1", purchasedAt, models.OrderItem{ProductID: utils.GatedProductSlug, Qty: 1}),
	}}
	useOrderStore(t, orders)
	useEntitlementCache(t, NewEntitlementCache(5*time.Minute))

	first := CachedEntitlement(context.Background(), "user-1")
	second := CachedEntitlement(context.Background(), "user-1")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, orders.calls)
}

func TestCachedEntitlementDisabledCacheRecomputes(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixedClock(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	orders := &fakeOrderStore{orders: []models.Order{
		paidOrder("user-1", purchasedAt, models.OrderItem{ProductID: utils.GatedProductSlug, Qty: 1}),
	}}
	useOrderStore(t, orders)
	useEntitlementCache(t, NewEntitlementCache(0))

	first := CachedEntitlement(context.Background(), "user-1")
	second := CachedEntitlement(context.Background(), "user-1")

	// Same answer either way: the cache is behavior-transparent.
	assert.Equal(t, first, second)
	assert.Equal(t, 2, orders.calls)
}

func TestCachedEntitlementKeyedPerUser(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixedClock(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	useOrderStore(t, &fakeOrderStore{orders: []models.Order{
		paidOrder("buyer", purchasedAt, models.OrderItem{ProductID: utils.GatedProductSlug, Qty: 1}),
	}})
	useEntitlementCache(t, NewEntitlementCache(5*time.Minute))

	buyer := CachedEntitlement(context.Background(), "buyer")
	other := CachedEntitlement(context.Background(), "other")

	assert.True(t, buyer.HasPurchased)
	assert.False(t, other.HasPurchased)
}

func TestEntitlementCachePurge(t *testing.T) {
	cache := NewEntitlementCache(5 * time.Minute)
	cache.Add("user-1", Entitlement{HasPurchased: true})

	_, ok := cache.Get("user-1")
	assert.True(t, ok)

	cache.Purge()
	_, ok = cache.Get("user-1")
	assert.False(t, ok)
}
