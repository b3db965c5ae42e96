package models

import (
	"time"

	"gorm.io/gorm"
)

// SpinTopupOrder tracks a Razorpay order created to buy paid spin
// credit. The Razorpay order id is also the idempotency key handed to
// the credit ledger when the payment settles.
type SpinTopupOrder struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          string         `gorm:"index" json:"user_id"`
	RazorpayOrderID string         `gorm:"uniqueIndex" json:"razorpay_order_id"`
	AmountCents     int64          `json:"amount_cents"`
	Status          string         `json:"status"` // pending, completed, failed
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// SpinTopupOrder status constants
const (
	TopupStatusPending   = "pending"
	TopupStatusCompleted = "completed"
	TopupStatusFailed    = "failed"
)
