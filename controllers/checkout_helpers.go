package controllers

import (
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// PriceSource tags where a resolved unit price came from, so order
// records and logs can say which source won.
type PriceSource string

// Price sources, in resolution priority order.
const (
	PriceSourceCatalog  PriceSource = "catalog"
	PriceSourceProvider PriceSource = "provider"
	PriceSourceClient   PriceSource = "client"
)

// ResolveUnitPrice picks the unit price for a line item from the first
// usable source: the catalog row, then the payment-provider payload,
// then the client-supplied value. An explicit prioritized chain rather
// than nested conditionals, so the audit trail can name its source.
func ResolveUnitPrice(product *models.Product, providerPrice, clientPrice *float64) (float64, PriceSource, error) {
	if product != nil && product.Price > 0 {
		return product.Price, PriceSourceCatalog, nil
	}
	if providerPrice != nil && *providerPrice > 0 {
		return *providerPrice, PriceSourceProvider, nil
	}
	if clientPrice != nil && *clientPrice > 0 {
		return *clientPrice, PriceSourceClient, nil
	}
	return 0, "", utils.BadRequestError("No usable price for item", nil)
}
