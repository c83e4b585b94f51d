package store

import "time"

// Category enumerates the pharmaceutical categories stocked by the pharmacy.
type Category string

const (
	CategoryAntibiotic       Category = "Antibiotic"
	CategoryAnalgesic        Category = "Analgesic"
	CategoryAntihistamine    Category = "Antihistamine"
	CategoryAntiseptic       Category = "Antiseptic"
	CategoryCardiovascular   Category = "Cardiovascular"
	CategoryDermatological   Category = "Dermatological"
	CategoryGastrointestinal Category = "Gastrointestinal"
)

// Categories lists every defined category in display order.
var Categories = []Category{
	CategoryAntibiotic,
	CategoryAnalgesic,
	CategoryAntihistamine,
	CategoryAntiseptic,
	CategoryCardiovascular,
	CategoryDermatological,
	CategoryGastrointestinal,
}

// Valid reports whether the category is one of the defined values.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DosageForm enumerates the physical forms a product can be dispensed in.
type DosageForm string

const (
	DosageFormTablet    DosageForm = "Tablet"
	DosageFormCapsule   DosageForm = "Capsule"
	DosageFormSyrup     DosageForm = "Syrup"
	DosageFormInjection DosageForm = "Injection"
	DosageFormOintment  DosageForm = "Ointment"
	DosageFormCream     DosageForm = "Cream"
	DosageFormDrops     DosageForm = "Drops"
)

// DosageForms lists every defined dosage form in display order.
var DosageForms = []DosageForm{
	DosageFormTablet,
	DosageFormCapsule,
	DosageFormSyrup,
	DosageFormInjection,
	DosageFormOintment,
	DosageFormCream,
	DosageFormDrops,
}

// Valid reports whether the dosage form is one of the defined values.
func (d DosageForm) Valid() bool {
	for _, known := range DosageForms {
		if d == known {
			return true
		}
	}
	return false
}

// BatchStatus enumerates the lifecycle states of a stock batch. Only
// Active batches are creatable today; readers must honour all four.
type BatchStatus string

const (
	BatchStatusActive     BatchStatus = "ACTIVE"
	BatchStatusQuarantine BatchStatus = "QUARANTINE"
	BatchStatusExpired    BatchStatus = "EXPIRED"
	BatchStatusDisposed   BatchStatus = "DISPOSED"
)

// TransactionType enumerates supported stock ledger movements.
type TransactionType string

const (
	// TransactionTypeGRN records a goods-received note, always inbound.
	TransactionTypeGRN TransactionType = "GRN"
	// TransactionTypeTransferOut records stock leaving a location.
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
	// TransactionTypeTransferIn records stock arriving at a location.
	TransactionTypeTransferIn TransactionType = "TRANSFER_IN"
	// TransactionTypeWholesaleIssue records stock issued to a wholesale buyer.
	TransactionTypeWholesaleIssue TransactionType = "WHOLESALE_ISSUE"
	// TransactionTypeAdjustmentAdd records a manual positive correction.
	TransactionTypeAdjustmentAdd TransactionType = "ADJUSTMENT_ADD"
	// TransactionTypeAdjustmentSub records a manual negative correction.
	TransactionTypeAdjustmentSub TransactionType = "ADJUSTMENT_SUB"
	// TransactionTypeExpiryWriteOff records disposal of expired stock.
	TransactionTypeExpiryWriteOff TransactionType = "EXPIRY_WRITE_OFF"
)

// Product is a defined pharmaceutical item. Products are created once via
// the catalog and never mutated or deleted; deactivation is a flag.
type Product struct {
	ID            string
	Name          string
	Strength      string
	DosageForm    DosageForm
	Category      Category
	UnitPrice     float64
	MinStockLevel int
	IsActive      bool
	CreatedAt     time.Time
}

// StockBatch is a physically distinct lot of a product received on a
// specific date with its own expiry. Many batches belong to one product.
type StockBatch struct {
	ID          string
	BatchNumber string
	ExpiryDate  time.Time
	Quantity    int
	Status      BatchStatus
	ProductID   string
	LocationID  string
}

// LedgerEntry is an immutable audit record of one inventory-affecting
// transaction. Entries are never mutated or removed once appended.
type LedgerEntry struct {
	ID           string
	Type         TransactionType
	Quantity     int
	ReferenceDoc string
	Reason       string
	Timestamp    time.Time
	ProductID    string
	BatchID      string
	LocationID   string
	UserID       string
	CreatedBy    string
}

// ProductDraft carries caller-supplied fields for a new product. The store
// assigns the identifier, active flag and creation timestamp.
type ProductDraft struct {
	Name          string
	Strength      string
	DosageForm    DosageForm
	Category      Category
	UnitPrice     float64
	MinStockLevel int
}

// BatchDraft carries caller-supplied fields for a new stock batch.
type BatchDraft struct {
	BatchNumber string
	ExpiryDate  time.Time
	Quantity    int
	Status      BatchStatus
	ProductID   string
	LocationID  string
}

// LedgerDraft carries caller-supplied fields for a new ledger entry. The
// store assigns the identifier and timestamp.
type LedgerDraft struct {
	Type         TransactionType
	Quantity     int
	ReferenceDoc string
	Reason       string
	ProductID    string
	BatchID      string
	LocationID   string
	UserID       string
	CreatedBy    string
}
