package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRouter(user *models.User) *gin.Engine {
	router := gin.New()
	group := router.Group("/v1")
	if user != nil {
		group.Use(stubAuth(*user))
	}
	orders := group.Group("/orders")
	{
		orders.POST("", RecordOrder)
		orders.GET("", ListOrders)
		orders.GET("/:id", GetOrder)
	}
	return router
}

func useProductStore(t *testing.T, products *fakeProductStore) {
	t.Helper()
	prev := ProductRepo
	ProductRepo = products
	t.Cleanup(func() { ProductRepo = prev })
}

func TestRecordOrderResolvesCatalogPrice(t *testing.T) {
	orders := &fakeOrderStore{}
	useOrderStore(t, orders)
	useProductStore(t, &fakeProductStore{products: map[string]models.Product{
		"rose-serum": {ID: "rose-serum", Name: "Rose Serum", Price: 24.99, Active: true},
	}})

	body := []byte(`{
		"items": [{"product_id": "rose-serum", "qty": 2, "price": 1.00}],
		"shipping": 5.00
	}`)
	router := orderRouter(&models.User{ID: "user-1", Email: ""})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, orders.orders, 1)

	saved := orders.orders[0]
	assert.Equal(t, models.OrderStatusPaid, saved.Status)
	require.Len(t, saved.Items, 1)
	// Catalog price wins over the client-supplied one.
	assert.Equal(t, 24.99, saved.Items[0].Price)
	assert.Equal(t, "Rose Serum", saved.Items[0].Name)
	assert.InDelta(t, 2*24.99, saved.Subtotal, 0.001)
	assert.InDelta(t, 2*24.99+5.00, saved.Total, 0.001)
	assert.NotEmpty(t, saved.ID)
}

func TestRecordOrderFallsBackToClientPrice(t *testing.T) {
	orders := &fakeOrderStore{}
	useOrderStore(t, orders)
	useProductStore(t, &fakeProductStore{products: map[string]models.Product{}})

	body := []byte(`{"items": [{"product_id": "legacy-sku", "name": "Old Bundle", "qty": 1, "price": 39.00}]}`)
	router := orderRouter(&models.User{ID: "user-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, orders.orders, 1)
	assert.Equal(t, 39.00, orders.orders[0].Items[0].Price)
}

func TestRecordOrderRejectsUnpriceableItem(t *testing.T) {
	orders := &fakeOrderStore{}
	useOrderStore(t, orders)
	useProductStore(t, &fakeProductStore{products: map[string]models.Product{}})

	body := []byte(`{"items": [{"product_id": "legacy-sku", "qty": 1}]}`)
	router := orderRouter(&models.User{ID: "user-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.orders)
}

func TestRecordOrderRequiresItems(t *testing.T) {
	useOrderStore(t, &fakeOrderStore{})
	useProductStore(t, &fakeProductStore{})

	router := orderRouter(&models.User{ID: "user-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader([]byte(`{"items": []}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersNewestFirst(t *testing.T) {
	older := paidOrder("user-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := paidOrder("user-1", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	useOrderStore(t, &fakeOrderStore{orders: []models.Order{older, newer}})

	router := orderRouter(&models.User{ID: "user-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []models.Order `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, newer.ID, resp.Data[0].ID)
	assert.Equal(t, int64(2), resp.Pagination.Total)
}

func TestGetOrderScopedToOwner(t *testing.T) {
	order := paidOrder("someone-else", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	useOrderStore(t, &fakeOrderStore{orders: []models.Order{order}})

	router := orderRouter(&models.User{ID: "user-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+order.ID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
