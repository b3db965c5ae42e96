package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// ListCoupons returns the user's coupons, used and unused.
func ListCoupons(c *gin.Context) {
	utils.LogInfo("ListCoupons called")

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

	profile, err := ProfileRepo.Get(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to load coupons for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}

	coupons := profile.Metadata.Coupons
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	utils.Success(c, "Coupons retrieved", gin.H{
		"coupons": coupons,
	})
}

// RedeemCouponCode marks one of the user's coupons used. Redeeming an
// already-used coupon is rejected so a code can never discount twice.
func RedeemCouponCode(c *gin.Context) {
	utils.LogInfo("RedeemCouponCode called")

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
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Code is required", err.Error())
		return
	}

	coupon, err := RedeemCoupon(c.Request.Context(), user.ID, req.Code)
	if err != nil {
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.LogError("Coupon redemption failed for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to redeem coupon", err.Error())
		return
	}

	utils.Success(c, "Coupon redeemed", gin.H{
		"coupon": coupon,
	})
}
