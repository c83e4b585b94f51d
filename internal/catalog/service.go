package catalog

import (
	"context"

	"github.com/pharmastock/pharmastock/internal/store"
)

// Service coordinates product catalog operations.
type Service struct {
	store *store.Memory
}

// NewService builds Service.
func NewService(st *store.Memory) *Service {
	return &Service{store: st}
}

// List returns every defined product in insertion order.
func (s *Service) List(ctx context.Context) ([]store.Product, error) {
	return s.store.ListProducts(), nil
}

// Get looks a product up by identifier.
func (s *Service) Get(ctx context.Context, id string) (store.Product, error) {
	product, ok := s.store.FindProduct(id)
	if !ok {
		return store.Product{}, ErrProductNotFound
	}
	return product, nil
}

// Create defines a new product. Identifier, active flag and creation
// timestamp are assigned by the store.
func (s *Service) Create(ctx context.Context, input CreateProductInput) (store.Product, error) {
	if input.Name == "" {
		return store.Product{}, ErrNameRequired
	}
	if !input.Category.Valid() {
		return store.Product{}, ErrInvalidCategory
	}
	if !input.DosageForm.Valid() {
		return store.Product{}, ErrInvalidDosageForm
	}
	if input.UnitPrice < 0 {
		return store.Product{}, ErrNegativeUnitPrice
	}
	if input.MinStockLevel < 0 {
		return store.Product{}, ErrNegativeMinStock
	}
	product := s.store.AppendProduct(store.ProductDraft{
		Name:          input.Name,
		Strength:      input.Strength,
		DosageForm:    input.DosageForm,
		Category:      input.Category,
		UnitPrice:     input.UnitPrice,
		MinStockLevel: input.MinStockLevel,
	})
	return product, nil
}
