package controllers

import "github.com/hagi-aesthetics/hagi-store/store"

// Store handles the controllers operate through. Wired once at startup;
// tests substitute in-memory fakes.
var (
	OrderRepo   store.OrderStore
	ProfileRepo store.ProfileStore
	ProductRepo store.ProductStore
	TopupRepo   store.TopupStore
)

// SetupStores wires the persistence layer into the controllers.
func SetupStores(orders store.OrderStore, profiles store.ProfileStore, products store.ProductStore, topups store.TopupStore) {
	OrderRepo = orders
	ProfileRepo = profiles
	ProductRepo = products
	TopupRepo = topups
}
