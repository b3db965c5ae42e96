package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// DebitSpinCredit spends one spin of the requested kind and returns the
// new balances.
func DebitSpinCredit(c *gin.Context) {
	utils.LogInfo("DebitSpinCredit called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	var req struct {
		Kind string `json:"kind" binding:"required,oneof=free paid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid spin debit request for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. Kind must be 'free' or 'paid'", err.Error())
		return
	}

	balances, err := DebitSpin(c.Request.Context(), user.ID, SpinKind(req.Kind))
	if err != nil {
		var profileErr *utils.ProfileUpdateError
		if errors.As(err, &profileErr) {
			utils.LogError("Spin debit failed for user %s: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update spin credits", err.Error())
			return
		}
		utils.BadRequest(c, "Invalid spin kind", err.Error())
		return
	}

	utils.Success(c, "Spin debited", gin.H{
		"credits": balances,
	})
}

// GrantSpinReward issues a coupon for a winning spin. The win itself is
// decided by the caller; this endpoint only mints the reward.
func GrantSpinReward(c *gin.Context) {
	utils.LogInfo("GrantSpinReward called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	var req struct {
		AmountPerItem float64 `json:"amount_per_item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.AmountPerItem <= 0 {
		req.AmountPerItem = utils.DefaultCouponAmountPerItem
	}

	coupon, err := IssueCoupon(c.Request.Context(), user.ID, req.AmountPerItem)
	if err != nil {
		utils.LogError("Failed to issue coupon for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to issue coupon", err.Error())
		return
	}

	utils.Created(c, "Coupon issued", gin.H{
		"coupon": coupon,
	})
}
