package controllers

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// GenerateCouponCode builds a code like HAGI-5OFF-04217. The 5-digit
// suffix is random, not unique: collisions are tolerated and only
// practically unlikely.
func GenerateCouponCode(amountPerItem float64) string {
	return fmt.Sprintf("%s-%.0fOFF-%05d", utils.CouponCodePrefix, amountPerItem, rand.Intn(100000))
}

// IssueCoupon mints a spin-wheel reward coupon and appends it, unused,
// to the user's list. Deciding the win is the caller's job; this only
// hands out the reward once a win is presented.
func IssueCoupon(ctx context.Context, userID string, amountPerItem float64) (models.Coupon, error) {
	user, err := ProfileRepo.Get(ctx, userID)
	if err != nil {
		return models.Coupon{}, utils.NewProfileUpdateError(userID, 0, err)
	}

	coupon := models.Coupon{
		Code:          GenerateCouponCode(amountPerItem),
		Amount:        amountPerItem,
		Type:          models.CouponTypePerItem,
		AmountPerItem: amountPerItem,
		Used:          false,
		CreatedAt:     Clock(),
	}

	meta := user.Metadata
	meta.Coupons = append(meta.Coupons, coupon)
	if err := ProfileRepo.UpdateMetadata(ctx, userID, meta); err != nil {
		return models.Coupon{}, utils.NewProfileUpdateError(userID, 0, err)
	}

	utils.LogInfo("Issued coupon %s to user %s", coupon.Code, userID)
	return coupon, nil
}

// RedeemCoupon marks a coupon used, at most once. An unknown or
// already-used code is a denial, never a second discount. Codes match
// case-insensitively with surrounding whitespace ignored, the way
// customers type them.
func RedeemCoupon(ctx context.Context, userID, code string) (models.Coupon, error) {
	user, err := ProfileRepo.Get(ctx, userID)
	if err != nil {
		return models.Coupon{}, utils.NewProfileUpdateError(userID, 0, err)
	}

	target := strings.ToUpper(strings.TrimSpace(code))
	meta := user.Metadata
	for i := range meta.Coupons {
		if strings.ToUpper(meta.Coupons[i].Code) != target {
			continue
		}
		if meta.Coupons[i].Used {
			utils.LogInfo("Rejected reuse of coupon %s by user %s", meta.Coupons[i].Code, userID)
			return models.Coupon{}, utils.BadRequestError("Invalid or already used coupon code", nil)
		}

		now := Clock()
		meta.Coupons[i].Used = true
		meta.Coupons[i].UsedAt = &now
		if err := ProfileRepo.UpdateMetadata(ctx, userID, meta); err != nil {
			return models.Coupon{}, utils.NewProfileUpdateError(userID, 0, err)
		}

		utils.LogInfo("Coupon %s redeemed by user %s", meta.Coupons[i].Code, userID)
		return meta.Coupons[i], nil
	}

	return models.Coupon{}, utils.BadRequestError("Invalid or already used coupon code", nil)
}
