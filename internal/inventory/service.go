package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/pharmastock/pharmastock/internal/shared"
	"github.com/pharmastock/pharmastock/internal/store"
)

// Service coordinates inventory aggregation and goods receiving.
type Service struct {
	store *store.Memory
	now   func() time.Time
}

// NewService builds Service.
func NewService(st *store.Memory) *Service {
	return &Service{store: st, now: time.Now}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// Inventory joins every product to its batches and derives on-hand
// quantity, health label and stock value. Every read recomputes from a
// fresh store snapshot; batches are indexed by product up front to keep
// the join linear in products plus batches.
func (s *Service) Inventory(ctx context.Context) ([]InventoryRow, error) {
	products := s.store.ListProducts()
	batches := s.store.ListBatches()

	byProduct := make(map[string][]store.StockBatch, len(products))
	for _, b := range batches {
		byProduct[b.ProductID] = append(byProduct[b.ProductID], b)
	}

	rows := make([]InventoryRow, 0, len(products))
	for _, p := range products {
		owned := byProduct[p.ID]
		onHand := 0
		for _, b := range owned {
			if b.Status == store.BatchStatusActive {
				onHand += b.Quantity
			}
		}
		rows = append(rows, InventoryRow{
			Product:        p,
			OnHandQuantity: onHand,
			Health:         ClassifyHealth(onHand, p.MinStockLevel),
			StockValue:     float64(onHand) * p.UnitPrice,
			Batches:        owned,
		})
	}
	return rows, nil
}

// ExpiryRisk labels every batch with its risk tier. The summary counts all
// batches; the item list keeps only expired and critical ones, sorted by
// expiry date ascending.
func (s *Service) ExpiryRisk(ctx context.Context) (RiskReport, error) {
	now := s.now()
	batches := s.store.ListBatches()
	products := s.store.ListProducts()

	productByID := make(map[string]store.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	var report RiskReport
	for _, b := range batches {
		risk := ClassifyExpiryRisk(b.ExpiryDate, now)
		switch risk {
		case RiskExpired:
			report.Summary.Expired++
		case RiskCritical:
			report.Summary.Critical++
		case RiskNearExpiry:
			report.Summary.NearExpiry++
		case RiskSafe:
			report.Summary.Safe++
		}
		days := DaysUntil(b.ExpiryDate, now)
		if days >= criticalWindowDays {
			continue
		}
		report.Items = append(report.Items, RiskItem{
			Batch:           b,
			Product:         productByID[b.ProductID],
			Risk:            risk,
			DaysUntilExpiry: days,
		})
	}
	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].Batch.ExpiryDate.Before(report.Items[j].Batch.ExpiryDate)
	})
	return report, nil
}

// Receive posts a goods-received note: it creates an active batch and the
// matching GRN ledger entry in one atomic store write. Nothing is
// persisted when any precondition fails.
func (s *Service) Receive(ctx context.Context, input ReceiveInput) (store.StockBatch, error) {
	if input.ProductID == "" {
		return store.StockBatch{}, ErrProductRequired
	}
	if input.BatchNumber == "" {
		return store.StockBatch{}, ErrBatchNumberRequired
	}
	if input.ExpiryDate.IsZero() {
		return store.StockBatch{}, ErrInvalidExpiryDate
	}
	if input.Quantity <= 0 {
		return store.StockBatch{}, ErrInvalidQuantity
	}
	product, ok := s.store.FindProduct(input.ProductID)
	if !ok {
		return store.StockBatch{}, ErrProductNotFound
	}

	actor := shared.ActorFromContext(ctx)
	var batch store.StockBatch
	err := s.store.Update(func(tx *store.Tx) error {
		batch = tx.AppendBatch(store.BatchDraft{
			BatchNumber: input.BatchNumber,
			ExpiryDate:  input.ExpiryDate,
			Quantity:    input.Quantity,
			Status:      store.BatchStatusActive,
			ProductID:   product.ID,
		})
		tx.AppendLedgerEntry(store.LedgerDraft{
			Type:         store.TransactionTypeGRN,
			Quantity:     input.Quantity,
			ReferenceDoc: input.ReferenceDoc,
			ProductID:    product.ID,
			BatchID:      batch.ID,
			UserID:       actor.ID,
			CreatedBy:    actor.Name,
		})
		return nil
	})
	if err != nil {
		return store.StockBatch{}, err
	}
	return batch, nil
}
