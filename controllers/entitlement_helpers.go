package controllers

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// Clock returns the current time. Overridden in tests for deterministic
// expiry math.
var Clock = time.Now

// Entitlement is the derived answer to "can this user download the
// vendor list right now". Computed fresh from orders, never persisted.
type Entitlement struct {
	HasPurchased  bool       `json:"has_purchased"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	IsExpired     bool       `json:"is_expired"`
	ExpiresAt     *time.Time `json:"expires_at"`
	DaysRemaining *int       `json:"days_remaining"`
}

// CheckEntitlement reports whether the user has ever bought the gated
// product, and when. It scans the most recent paid orders, newest
// first; the first matching line item wins. Fails closed: an order
// store error is logged and reported as not purchased, never as a
// grant.
func CheckEntitlement(ctx context.Context, userID string) (bool, *time.Time) {
	orders, err := OrderRepo.FindByUserAndStatus(ctx, userID, models.PaidOrderStatuses, utils.OrderScanLimit)
	if err != nil {
		utils.LogError("Entitlement order query failed for user %s: %v", userID, err)
		return false, nil
	}

	for _, order := range orders {
		for _, item := range order.Items {
			if matchesGatedProduct(item) {
				purchasedAt := order.CreatedAt
				return true, &purchasedAt
			}
		}
	}
	return false, nil
}

// matchesGatedProduct checks a line item against the canonical slug,
// the legacy alias ids, and the case-insensitive name substrings.
// Orders created under the old identifier scheme must keep unlocking
// the download without a data migration.
func matchesGatedProduct(item models.OrderItem) bool {
	if item.ProductID == utils.GatedProductSlug {
		return true
	}
	for _, alias := range utils.GatedProductAliases {
		if item.ProductID == alias {
			return true
		}
	}
	if item.Name == "" {
		return false
	}
	name := strings.ToLower(item.Name)
	for _, substr := range utils.GatedProductNameSubstrings {
		if strings.Contains(name, substr) {
			return true
		}
	}
	return false
}

// ComputeExpiry derives expiry state from a purchase instant. Pure
// function; a zero purchase instant is a programming error and panics.
//
// Days remaining round up, so an entitlement expiring in 30 minutes
// reports 1 day, and the value is at least 1 whenever not expired.
func ComputeExpiry(purchasedAt, now time.Time, windowDays int) (expired bool, expiresAt time.Time, daysRemaining int) {
	if purchasedAt.IsZero() {
		panic("ComputeExpiry: zero purchase instant")
	}

	expiresAt = purchasedAt.Add(time.Duration(windowDays) * 24 * time.Hour)
	expired = now.After(expiresAt)
	if !expired {
		remaining := expiresAt.Sub(now)
		daysRemaining = int(math.Ceil(remaining.Hours() / 24))
		if daysRemaining < 1 {
			daysRemaining = 1
		}
	}
	return expired, expiresAt, daysRemaining
}

// ComputeEntitlement combines the purchase check and the expiry math
// into the full derived record.
func ComputeEntitlement(ctx context.Context, userID string) Entitlement {
	hasPurchased, purchasedAt := CheckEntitlement(ctx, userID)

	ent := Entitlement{
		HasPurchased: hasPurchased,
		PurchaseDate: purchasedAt,
	}
	if hasPurchased && purchasedAt != nil {
		expired, expiresAt, days := ComputeExpiry(*purchasedAt, Clock(), utils.EntitlementWindowDays)
		ent.IsExpired = expired
		ent.ExpiresAt = &expiresAt
		if !expired {
			ent.DaysRemaining = &days
		}
	}
	return ent
}

// CachedEntitlement consults the entitlement cache before recomputing.
// Two concurrent misses may both recompute; the underlying query is
// idempotent and cheap next to streaming the file.
func CachedEntitlement(ctx context.Context, userID string) Entitlement {
	if ent, ok := EntitlementResults.Get(userID); ok {
		return ent
	}
	ent := ComputeEntitlement(ctx, userID)
	EntitlementResults.Add(userID, ent)
	return ent
}
