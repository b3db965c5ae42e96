// Package store holds the persistence interfaces the controllers work
// against, plus their GORM implementations. Handlers never touch the
// database handle directly; tests substitute in-memory fakes.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/hagi-aesthetics/hagi-store/models"
)

// QueryTimeout bounds every outbound store call. A timeout takes the
// calling component's failure path, never a silent success.
const QueryTimeout = 15 * time.Second

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// OrderStore reads and writes recorded orders.
type OrderStore interface {
	// FindByUserAndStatus returns up to limit orders for the user with
	// one of the given statuses, newest first.
	FindByUserAndStatus(ctx context.Context, userID string, statuses []string, limit int) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id, userID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ProfileStore reads and writes user profile records. Metadata writes
// replace the whole bag; callers read, merge, then write. There is no
// compare-and-swap, so two concurrent writers can lose an update - the
// accepted limitation of the upstream auth store this mirrors. A
// version column checked on write would close that gap.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	UpdateMetadata(ctx context.Context, userID string, meta models.ProfileMetadata) error
}

// ProductStore reads catalog rows.
type ProductStore interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
}

// TopupStore tracks spin-credit top-up orders.
type TopupStore interface {
	Create(ctx context.Context, order *models.SpinTopupOrder) error
	GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.SpinTopupOrder, error)
	Update(ctx context.Context, order *models.SpinTopupOrder) error
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, QueryTimeout)
}
