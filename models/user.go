package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User is the profile record backing authentication. Spin balances,
// processed payment sessions and coupons live in the Metadata bag, the
// same way the upstream auth store keeps them in user_metadata.
type User struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string          `gorm:"uniqueIndex" json:"email"`
	Username  string          `json:"username"`
	Metadata  ProfileMetadata `gorm:"type:jsonb" json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProfileMetadata is the per-user attribute bag. Writes replace the
// whole bag, so callers must read-merge-write; there is no deep merge
// in the store.
type ProfileMetadata struct {
	// Pointers distinguish "never set" from an explicit zero so
	// defaults can be applied on read.
	FreeSpinsLeft    *int   `json:"free_spins_left,omitempty"`
	PaidCreditsCents *int64 `json:"paid_credits_cents,omitempty"`

	// Payment-session ids that have already been credited. Checked
	// before every credit to keep duplicate webhook deliveries from
	// double-crediting.
	ProcessedSpinSessions []string `json:"processed_spin_sessions,omitempty"`

	Coupons []Coupon `json:"coupons,omitempty"`
}

// Coupon is a spin-wheel reward stored on the user's profile. Codes are
// unique within a user's list in practice, not globally.
type Coupon struct {
	Code          string     `json:"code"`
	Amount        float64    `json:"amount"`
	Type          string     `json:"type"` // "per_item"
	AmountPerItem float64    `json:"amount_per_item"`
	Used          bool       `json:"used"`
	CreatedAt     time.Time  `json:"created_at"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
}

// CouponTypePerItem is the only coupon type the spin wheel issues.
const CouponTypePerItem = "per_item"

// Value implements driver.Valuer so GORM stores the bag as jsonb.
func (m ProfileMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *ProfileMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = ProfileMetadata{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ProfileMetadata: %T", value)
	}
	return json.Unmarshal(raw, m)
}
