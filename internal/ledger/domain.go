package ledger

import "github.com/pharmastock/pharmastock/internal/store"

// View is a ledger entry denormalized with the product name and batch
// number it references, for display. Dangling references resolve to empty
// strings rather than failing the whole listing.
type View struct {
	Entry       store.LedgerEntry
	ProductName string
	BatchNumber string
}
