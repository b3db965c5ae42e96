package store

import (
	"context"
	"errors"

	"github.com/hagi-aesthetics/hagi-store/models"
	"gorm.io/gorm"
)

// GormProductStore is the Postgres-backed ProductStore.
type GormProductStore struct {
	db *gorm.DB
}

// NewGormProductStore creates a GormProductStore.
func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

// GetByID fetches a catalog row by slug.
func (s *GormProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActive returns all active catalog rows.
func (s *GormProductStore) ListActive(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var products []models.Product
	err := s.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
