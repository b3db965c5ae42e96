package store

import (
	"context"
	"errors"

	"github.com/hagi-aesthetics/hagi-store/models"
	"gorm.io/gorm"
)

// GormTopupStore is the Postgres-backed TopupStore.
type GormTopupStore struct {
	db *gorm.DB
}

// NewGormTopupStore creates a GormTopupStore.
func NewGormTopupStore(db *gorm.DB) *GormTopupStore {
	return &GormTopupStore{db: db}
}

// Create records a new pending top-up order.
func (s *GormTopupStore) Create(ctx context.Context, order *models.SpinTopupOrder) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Create(order).Error
}

// GetByRazorpayOrderID fetches a top-up order by its provider order id.
func (s *GormTopupStore) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.SpinTopupOrder, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var order models.SpinTopupOrder
	err := s.db.WithContext(ctx).Where("razorpay_order_id = ?", razorpayOrderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update saves changes to a top-up order.
func (s *GormTopupStore) Update(ctx context.Context, order *models.SpinTopupOrder) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Save(order).Error
}
