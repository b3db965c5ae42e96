package controllers

import (
	"testing"

	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolveUnitPriceCatalogWins(t *testing.T) {
	product := &models.Product{ID: "rose-serum", Price: 24.99}

	price, source, err := ResolveUnitPrice(product, floatPtr(19.99), floatPtr(1.00))

	require.NoError(t, err)
	assert.Equal(t, 24.99, price)
	assert.Equal(t, PriceSourceCatalog, source)
}

func TestResolveUnitPriceFallsBackToProvider(t *testing.T) {
	price, source, err := ResolveUnitPrice(nil, floatPtr(19.99), floatPtr(1.00))

	require.NoError(t, err)
	assert.Equal(t, 19.99, price)
	assert.Equal(t, PriceSourceProvider, source)
}

func TestResolveUnitPriceFallsBackToClient(t *testing.T) {
	price, source, err := ResolveUnitPrice(nil, nil, floatPtr(12.50))

	require.NoError(t, err)
	assert.Equal(t, 12.50, price)
	assert.Equal(t, PriceSourceClient, source)
}

func TestResolveUnitPriceSkipsZeroCatalogPrice(t *testing.T) {
	product := &models.Product{ID: "rose-serum", Price: 0}

	price, source, err := ResolveUnitPrice(product, floatPtr(19.99), nil)

	require.NoError(t, err)
	assert.Equal(t, 19.99, price)
	assert.Equal(t, PriceSourceProvider, source)
}

func TestResolveUnitPriceNoUsableSource(t *testing.T) {
	_, _, err := ResolveUnitPrice(nil, nil, nil)
	require.Error(t, err)

	_, _, err = ResolveUnitPrice(nil, floatPtr(0), floatPtr(-1))
	require.Error(t, err)
}
