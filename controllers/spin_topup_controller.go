package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiateSpinTopup creates a Razorpay order for one paid spin and
// records it pending. The actual payment capture happens on the
// provider's side.
func InitiateSpinTopup(c *gin.Context) {
	utils.LogInfo("InitiateSpinTopup called")

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
	utils.LogInfo("Processing spin topup request for user ID: %s", user.ID)

	amountCents := int64(utils.PaidSpinCostCents)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountCents,
		"currency":        "USD",
		"receipt":         "spin_topup_" + user.ID + "_" + time.Now().Format("20060102150405"),
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"source":  "spin_topup",
			"user_id": user.ID,
		},
	}
	utils.LogDebug("Creating Razorpay order with data: %+v", orderData)

	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create payment order", err.Error())
		return
	}
	razorpayOrderID := fmt.Sprintf("%v", rzOrder["id"])
	utils.LogDebug("Successfully created Razorpay order - Order ID: %s", razorpayOrderID)

	topupOrder := models.SpinTopupOrder{
		UserID:          user.ID,
		RazorpayOrderID: razorpayOrderID,
		AmountCents:     amountCents,
		Status:          models.TopupStatusPending,
	}
	if err := TopupRepo.Create(c.Request.Context(), &topupOrder); err != nil {
		utils.LogError("Failed to record spin topup order for user ID: %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to record topup order", err.Error())
		return
	}

	utils.LogInfo("Successfully initiated spin topup for user ID: %s", user.ID)
	utils.Success(c, "Spin topup order created successfully", gin.H{
		"razorpay_order_id": razorpayOrderID,
		"amount_cents":      amountCents,
		"amount_display":    fmt.Sprintf("$%.2f", float64(amountCents)/100),
		"key":               os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifySpinTopup verifies the payment signature and credits the spin
// balance. The Razorpay order id doubles as the idempotency key, so a
// retried verification call cannot credit twice.
func VerifySpinTopup(c *gin.Context) {
	utils.LogInfo("VerifySpinTopup called")

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
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request body for user ID: %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogDebug("Received verification request - Order ID: %s, Payment ID: %s", req.RazorpayOrderID, req.RazorpayPaymentID)

	topupOrder, err := TopupRepo.GetByRazorpayOrderID(c.Request.Context(), req.RazorpayOrderID)
	if err != nil || topupOrder.AmountCents <= 0 {
		utils.LogError("Failed to fetch spin topup order - Order ID: %s: %v", req.RazorpayOrderID, err)
		utils.BadRequest(c, "Unable to fetch topup amount for this order_id", nil)
		return
	}
	if topupOrder.UserID != user.ID {
		utils.LogError("Topup order %s does not belong to user %s", req.RazorpayOrderID, user.ID)
		utils.Forbidden(c, utils.ErrForbidden)
		return
	}

	// Verify signature
	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	generatedSignature := hex.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(generatedSignature), []byte(req.RazorpaySignature)) {
		utils.LogError("Payment verification failed - Order ID: %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}
	utils.LogDebug("Successfully verified payment signature for order ID: %s", req.RazorpayOrderID)

	result, err := CreditSpinBalance(c.Request.Context(), user.ID, topupOrder.AmountCents, req.RazorpayOrderID)
	if err != nil {
		var profileErr *utils.ProfileUpdateError
		if errors.As(err, &profileErr) {
			utils.LogError("Failed to credit %d cents for order %s: %v", profileErr.AttemptedCts, req.RazorpayOrderID, err)
		}
		utils.InternalServerError(c, "Failed to apply spin credit", err.Error())
		return
	}

	if !result.Skipped {
		topupOrder.Status = models.TopupStatusCompleted
		if err := TopupRepo.Update(c.Request.Context(), topupOrder); err != nil {
			// The credit already landed; a stale topup row is an
			// operator annoyance, not a customer-facing failure.
			utils.LogError("Failed to mark topup order %s completed: %v", req.RazorpayOrderID, err)
		}
	}

	utils.LogInfo("Spin topup verified for user ID: %s - credited: %v", user.ID, !result.Skipped)
	utils.Success(c, "Payment verified", gin.H{
		"new_balance_cents": result.NewBalanceCents,
		"skipped":           result.Skipped,
	})
}
