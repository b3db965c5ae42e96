package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// CheckPurchase reports whether the authenticated user has bought the
// gated product and how long the download stays unlocked. Always
// computed fresh so the storefront can show accurate countdowns; only
// the download path itself goes through the cache.
func CheckPurchase(c *gin.Context) {
	utils.LogInfo("CheckPurchase called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("Purchase check without authenticated user")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	if c.Param("product") != utils.GatedProductSlug {
		utils.LogDebug("Purchase check for unknown product: %s", c.Param("product"))
		utils.NotFound(c, utils.ErrUnknownProduct)
		return
	}

	ent := ComputeEntitlement(c.Request.Context(), user.ID)
	utils.LogInfo("Purchase check for user %s - purchased: %v, expired: %v", user.ID, ent.HasPurchased, ent.IsExpired)

	utils.Success(c, "Purchase status retrieved", gin.H{
		"has_purchased":  ent.HasPurchased,
		"is_expired":     ent.IsExpired,
		"purchase_date":  ent.PurchaseDate,
		"expires_at":     ent.ExpiresAt,
		"days_remaining": ent.DaysRemaining,
	})
}
