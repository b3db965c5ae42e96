package controllers

import (
	"context"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/store"
)

// In-memory stores backing the controller tests.

type fakeOrderStore struct {
	orders []models.Order
	err    error
	calls  int
}

func (f *fakeOrderStore) FindByUserAndStatus(_ context.Context, userID string, statuses []string, limit int) ([]models.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var matched []models.Order
	for _, order := range f.orders {
		if order.UserID == userID && allowed[order.Status] {
			matched = append(matched, order)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id, userID string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id && f.orders[i].UserID == userID {
			order := f.orders[i]
			return &order, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string, offset, limit int) ([]models.Order, int64, error) {
	var matched []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeProfileStore struct {
	users     map[string]models.User
	getErr    error
	updateErr error
	updates   int
}

func newFakeProfileStore(users ...models.User) *fakeProfileStore {
	f := &fakeProfileStore{users: make(map[string]models.User)}
	for _, user := range users {
		f.users[user.ID] = user
	}
	return f
}

func (f *fakeProfileStore) Get(_ context.Context, userID string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (f *fakeProfileStore) UpdateMetadata(_ context.Context, userID string, meta models.ProfileMetadata) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	user, ok := f.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	user.Metadata = meta
	f.users[userID] = user
	f.updates++
	return nil
}

type fakeProductStore struct {
	products map[string]models.Product
}

func (f *fakeProductStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &product, nil
}

func (f *fakeProductStore) ListActive(_ context.Context) ([]models.Product, error) {
	var products []models.Product
	for _, product := range f.products {
		if product.Active {
			products = append(products, product)
		}
	}
	return products, nil
}

type fakeTopupStore struct {
	orders map[string]models.SpinTopupOrder
}

func newFakeTopupStore(orders ...models.SpinTopupOrder) *fakeTopupStore {
	f := &fakeTopupStore{orders: make(map[string]models.SpinTopupOrder)}
	for _, order := range orders {
		f.orders[order.RazorpayOrderID] = order
	}
	return f
}

func (f *fakeTopupStore) Create(_ context.Context, order *models.SpinTopupOrder) error {
	f.orders[order.RazorpayOrderID] = *order
	return nil
}

func (f *fakeTopupStore) GetByRazorpayOrderID(_ context.Context, razorpayOrderID string) (*models.SpinTopupOrder, error) {
	order, ok := f.orders[razorpayOrderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &order, nil
}

func (f *fakeTopupStore) Update(_ context.Context, order *models.SpinTopupOrder) error {
	f.orders[order.RazorpayOrderID] = *order
	return nil
}

// stubAuth places a fixed user in the gin context, standing in for the
// JWT middleware.
func stubAuth(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}
