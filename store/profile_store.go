package store

import (
	"context"
	"errors"

	"github.com/hagi-aesthetics/hagi-store/models"
	"gorm.io/gorm"
)

// GormProfileStore is the Postgres-backed ProfileStore.
//
// UpdateMetadata is a plain overwrite of the jsonb bag. Concurrent
// read-modify-write cycles can lose an update; the ledger's idempotency
// set guards duplicate effects, not lost updates. Adding a version
// column checked-and-incremented here is the upgrade path if that ever
// stops being acceptable.
type GormProfileStore struct {
	db *gorm.DB
}

// NewGormProfileStore creates a GormProfileStore.
func NewGormProfileStore(db *gorm.DB) *GormProfileStore {
	return &GormProfileStore{db: db}
}

// Get fetches a user profile by id.
func (s *GormProfileStore) Get(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMetadata replaces the user's whole metadata bag.
func (s *GormProfileStore) UpdateMetadata(ctx context.Context, userID string, meta models.ProfileMetadata) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("metadata", meta)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
