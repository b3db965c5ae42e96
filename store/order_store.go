package store

import (
	"context"
	"errors"

	"github.com/hagi-aesthetics/hagi-store/models"
	"gorm.io/gorm"
)

// GormOrderStore is the Postgres-backed OrderStore.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a GormOrderStore.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// FindByUserAndStatus returns up to limit orders for the user with one
// of the given statuses, newest first. user_id and status are indexed.
func (s *GormOrderStore) FindByUserAndStatus(ctx context.Context, userID string, statuses []string, limit int) ([]models.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Create inserts a new order.
func (s *GormOrderStore) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Create(order).Error
}

// GetByID fetches a single order scoped to its owner.
func (s *GormOrderStore) GetByID(ctx context.Context, id, userID string) (*models.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var order models.Order
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns a page of the user's orders, newest first, plus
// the total count.
func (s *GormOrderStore) ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Order, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus transitions an order's status.
func (s *GormOrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
