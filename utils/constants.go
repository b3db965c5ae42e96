package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "HagiStore"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100
)

// Gated download contract. These values are part of the observable
// behavior of the entitlement endpoints.
const (
	// GatedProductSlug is the canonical id of the product whose
	// purchase unlocks the vendor-list PDF.
	GatedProductSlug = "vietnamese-hair-vendor-list"

	// GatedPDFFilename is the name the download is served under.
	GatedPDFFilename = "vietnamese-hair-vendor-list.pdf"

	// EntitlementWindowDays is how long a purchase keeps the download
	// unlocked.
	EntitlementWindowDays = 7

	// OrderScanLimit caps how many recent paid orders an entitlement
	// check scans.
	OrderScanLimit = 100

	// EntitlementCacheTTL is the default memoization window for
	// entitlement results.
	EntitlementCacheTTL = 5 * time.Minute
)

// GatedProductAliases are the legacy catalog ids the gated product was
// sold under before the slug scheme settled. Orders created under them
// still unlock the download; there is no migration path for old rows.
var GatedProductAliases = []string{"product03", "product 03"}

// GatedProductNameSubstrings match old line items by name when the id
// predates even the alias scheme. Compared case-insensitively.
var GatedProductNameSubstrings = []string{"vietnamese hair vendor", "hair vendor list"}

// Spin wheel contract.
const (
	// DefaultFreeSpins is the allotment a profile starts with.
	DefaultFreeSpins = 3

	// PaidSpinCostCents is the price of one paid spin.
	PaidSpinCostCents = 100

	// CouponCodePrefix prefixes every issued coupon code.
	CouponCodePrefix = "HAGI"

	// DefaultCouponAmountPerItem is the per-item discount a winning
	// spin awards.
	DefaultCouponAmountPerItem = 5
)

// Error messages
const (
	// Authentication errors
	ErrUnauthorized = "Please sign in to continue"
	ErrForbidden    = "Access forbidden"

	// Entitlement errors
	ErrNotPurchased   = "You must purchase this product to download the PDF"
	ErrAccessExpired  = "Your download link has expired. The PDF is only available for 7 days after purchase."
	ErrFileMissing    = "PDF file not found. Please contact support."
	ErrUnknownProduct = "Unknown product"

	// Server errors
	ErrInternalServer = "Internal server error"
)
