package inventory

import (
	"fmt"
	"time"

	"github.com/pharmastock/pharmastock/internal/shared"
	"github.com/pharmastock/pharmastock/internal/store"
)

// HealthStatus is the tri-state stock health label for a product.
type HealthStatus string

const (
	// HealthOutOfStock means no active stock remains.
	HealthOutOfStock HealthStatus = "OUT_OF_STOCK"
	// HealthLowStock means active stock sits below the minimum level.
	HealthLowStock HealthStatus = "LOW_STOCK"
	// HealthHealthy means active stock meets or exceeds the minimum level.
	HealthHealthy HealthStatus = "HEALTHY"
)

// ExpiryRisk is the four-tier risk label for a batch's expiry date.
type ExpiryRisk string

const (
	RiskExpired    ExpiryRisk = "EXPIRED"
	RiskCritical   ExpiryRisk = "CRITICAL"
	RiskNearExpiry ExpiryRisk = "NEAR_EXPIRY"
	RiskSafe       ExpiryRisk = "SAFE"
)

// Risk tier boundaries in whole calendar days. Comparisons are strict, so
// a batch exactly 30 days out is near expiry rather than critical.
const (
	criticalWindowDays   = 30
	nearExpiryWindowDays = 90
)

// InventoryRow is one product joined to its batches with derived state.
// Batches keep store order; non-active batches are listed but contribute
// nothing to the on-hand quantity.
type InventoryRow struct {
	Product        store.Product
	OnHandQuantity int
	Health         HealthStatus
	StockValue     float64
	Batches        []store.StockBatch
}

// RiskItem is one batch labeled with its expiry risk and owning product.
type RiskItem struct {
	Batch           store.StockBatch
	Product         store.Product
	Risk            ExpiryRisk
	DaysUntilExpiry int
}

// RiskSummary counts batches per risk tier across the whole store.
type RiskSummary struct {
	Expired    int
	Critical   int
	NearExpiry int
	Safe       int
}

// RiskReport is the expiry risk view: every batch counted in the summary,
// but only expired and critical batches listed, soonest expiry first.
type RiskReport struct {
	Items   []RiskItem
	Summary RiskSummary
}

// ReceiveInput describes a goods-received note to post.
type ReceiveInput struct {
	ProductID    string
	BatchNumber  string
	ExpiryDate   time.Time
	Quantity     int
	ReferenceDoc string
}

// ErrProductRequired indicates a GRN without a product reference.
var ErrProductRequired = fmt.Errorf("inventory: productId is required: %w", shared.ErrValidation)

// ErrBatchNumberRequired indicates a GRN without a batch number.
var ErrBatchNumberRequired = fmt.Errorf("inventory: batchNumber is required: %w", shared.ErrValidation)

// ErrInvalidExpiryDate indicates a GRN without a valid expiry date.
var ErrInvalidExpiryDate = fmt.Errorf("inventory: expiryDate must be a valid calendar date: %w", shared.ErrValidation)

// ErrInvalidQuantity indicates a GRN quantity that is not a positive integer.
var ErrInvalidQuantity = fmt.Errorf("inventory: quantity must be a positive integer: %w", shared.ErrValidation)

// ErrProductNotFound indicates the referenced product does not exist.
var ErrProductNotFound = fmt.Errorf("inventory: product %w", shared.ErrNotFound)
