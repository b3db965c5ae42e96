package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// GetSpinCredits returns the user's spin balances with profile defaults
// applied.
func GetSpinCredits(c *gin.Context) {
	utils.LogInfo("GetSpinCredits called")

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

	balances, err := GetCreditBalances(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to read credits for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch credits", err.Error())
		return
	}

	utils.Success(c, "Credits retrieved", gin.H{
		"credits": balances,
	})
}
