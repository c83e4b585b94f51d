package ledger

import (
	"context"

	"github.com/pharmastock/pharmastock/internal/store"
)

// Service reads the append-only transaction history.
type Service struct {
	store *store.Memory
}

// NewService builds Service.
func NewService(st *store.Memory) *Service {
	return &Service{store: st}
}

// List returns the full history in insertion order, denormalized with
// product names and batch numbers.
func (s *Service) List(ctx context.Context) ([]View, error) {
	entries := s.store.ListLedger()
	products := s.store.ListProducts()
	batches := s.store.ListBatches()

	nameByProduct := make(map[string]string, len(products))
	for _, p := range products {
		nameByProduct[p.ID] = p.Name
	}
	numberByBatch := make(map[string]string, len(batches))
	for _, b := range batches {
		numberByBatch[b.ID] = b.BatchNumber
	}

	views := make([]View, 0, len(entries))
	for _, entry := range entries {
		views = append(views, View{
			Entry:       entry,
			ProductName: nameByProduct[entry.ProductID],
			BatchNumber: numberByBatch[entry.BatchID],
		})
	}
	return views, nil
}
