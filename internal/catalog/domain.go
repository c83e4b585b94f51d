package catalog

import (
	"fmt"

	"github.com/pharmastock/pharmastock/internal/shared"
	"github.com/pharmastock/pharmastock/internal/store"
)

// CreateProductInput describes a request to define a new catalog product.
type CreateProductInput struct {
	Name          string
	Strength      string
	DosageForm    store.DosageForm
	Category      store.Category
	UnitPrice     float64
	MinStockLevel int
}

// ErrNameRequired indicates a missing product name.
var ErrNameRequired = fmt.Errorf("catalog: name is required: %w", shared.ErrValidation)

// ErrInvalidCategory indicates a category outside the defined set.
var ErrInvalidCategory = fmt.Errorf("catalog: category is not a defined category: %w", shared.ErrValidation)

// ErrInvalidDosageForm indicates a dosage form outside the defined set.
var ErrInvalidDosageForm = fmt.Errorf("catalog: dosage form is not a defined form: %w", shared.ErrValidation)

// ErrNegativeUnitPrice indicates a unit price below zero.
var ErrNegativeUnitPrice = fmt.Errorf("catalog: unit price must be >= 0: %w", shared.ErrValidation)

// ErrNegativeMinStock indicates a minimum stock level below zero.
var ErrNegativeMinStock = fmt.Errorf("catalog: minimum stock level must be >= 0: %w", shared.ErrValidation)

// ErrProductNotFound indicates the referenced product does not exist.
var ErrProductNotFound = fmt.Errorf("catalog: product %w", shared.ErrNotFound)
