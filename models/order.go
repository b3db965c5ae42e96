package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// PaidOrderStatuses are the statuses that count as a settled purchase
// for entitlement checks.
var PaidOrderStatuses = []string{OrderStatusPaid, OrderStatusCompleted}

// Order is a recorded storefront order. Items are kept as a jsonb list
// rather than relational rows: entitlement checks scan the denormalized
// items of many orders at once, and the payment providers hand items
// back in exactly this shape.
type Order struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	UserID          string     `gorm:"index" json:"user_id"`
	Status          string     `gorm:"index" json:"status"`
	Items           OrderItems `gorm:"type:jsonb" json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Shipping        float64    `json:"shipping"`
	Discount        float64    `json:"discount"`
	Total           float64    `json:"total"`
	CouponCode      string     `json:"coupon_code,omitempty"`
	CustomerEmail   string     `json:"customer_email,omitempty"`
	CustomerName    string     `json:"customer_name,omitempty"`
	Provider        string     `json:"provider,omitempty"`
	ProviderPayload JSONMap    `gorm:"type:jsonb" json:"provider_payload,omitempty"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image,omitempty"`
}

// OrderItems is the jsonb-backed item list.
type OrderItems []OrderItem

// Value implements driver.Valuer.
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return json.Marshal([]OrderItem{})
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner.
func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for OrderItems: %T", value)
	}
	return json.Unmarshal(raw, items)
}

// JSONMap stores an arbitrary provider payload as jsonb.
type JSONMap map[string]interface{}

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
	return json.Unmarshal(raw, m)
}
