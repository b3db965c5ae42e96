package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// paymentWebhookEvent is the slice of the provider payload this handler
// cares about.
type paymentWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
				Notes   struct {
					Source string `json:"source"`
					UserID string `json:"user_id"`
				} `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandlePaymentWebhook processes provider payment events. Spin top-up
// captures are credited through the ledger with the provider order id
// as the idempotency key, so redelivered events are acknowledged
// without crediting twice. A failed credit returns 500 so the provider
// retries rather than silently losing money.
func HandlePaymentWebhook(c *gin.Context) {
	utils.LogInfo("HandlePaymentWebhook called")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Invalid webhook body", nil)
		return
	}

	secret := os.Getenv("RAZORPAY_WEBHOOK_SECRET")
	signature := c.GetHeader("X-Razorpay-Signature")
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	if signature == "" || !hmac.Equal([]byte(expected), []byte(signature)) {
		utils.LogError("Webhook signature verification failed")
		utils.BadRequest(c, "Invalid webhook signature", nil)
		return
	}

	var event paymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		utils.LogError("Failed to parse webhook payload: %v", err)
		utils.BadRequest(c, "Invalid webhook payload", nil)
		return
	}

	if event.Event != "payment.captured" {
		utils.LogDebug("Ignoring webhook event: %s", event.Event)
		utils.Success(c, "Event ignored", nil)
		return
	}

	payment := event.Payload.Payment.Entity
	if payment.Notes.Source != "spin_topup" || payment.Notes.UserID == "" {
		utils.LogDebug("Ignoring non-topup payment capture: %s", payment.ID)
		utils.Success(c, "Event ignored", nil)
		return
	}

	amountCents := payment.Amount
	if topupOrder, err := TopupRepo.GetByRazorpayOrderID(c.Request.Context(), payment.OrderID); err == nil {
		// Trust the recorded amount over the wire value when we have it.
		amountCents = topupOrder.AmountCents
	}
	if amountCents <= 0 {
		utils.LogError("Webhook capture %s carries no usable amount", payment.ID)
		utils.BadRequest(c, "Invalid amount", nil)
		return
	}

	utils.LogInfo("Processing spin credit purchase: User %s, Amount: %d cents, Order: %s",
		payment.Notes.UserID, amountCents, payment.OrderID)

	result, err := CreditSpinBalance(c.Request.Context(), payment.Notes.UserID, amountCents, payment.OrderID)
	if err != nil {
		utils.LogError("Webhook credit failed for order %s: %v", payment.OrderID, err)
		utils.InternalServerError(c, "Failed to apply spin credit", err.Error())
		return
	}

	if !result.Skipped {
		if topupOrder, err := TopupRepo.GetByRazorpayOrderID(c.Request.Context(), payment.OrderID); err == nil {
			topupOrder.Status = models.TopupStatusCompleted
			if err := TopupRepo.Update(c.Request.Context(), topupOrder); err != nil {
				utils.LogError("Failed to mark topup order %s completed: %v", payment.OrderID, err)
			}
		}
	}

	utils.Success(c, "Webhook processed", gin.H{
		"skipped": result.Skipped,
	})
}
