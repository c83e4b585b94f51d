// Package store holds the in-process record collections behind the
// inventory service. State lives only in memory and is lost on restart.
package store

import (
	"fmt"
	"sync"
	"time"
)

// Memory owns the product, batch and ledger collections and is their sole
// mutator. All mutation is append-only; reads return copies so callers can
// never reach back into store state. A single writer lock serialises
// appends, which keeps the per-collection identifier counters collision
// free under concurrent requests.
type Memory struct {
	mu  sync.RWMutex
	now func() time.Time

	products []Product
	batches  []StockBatch
	ledger   []LedgerEntry

	productSeq int
	batchSeq   int
	ledgerSeq  int
}

// New constructs an empty store.
func New() *Memory {
	return &Memory{now: time.Now}
}

// WithNow overrides the store clock for testing.
func (s *Memory) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// ListProducts returns all products in insertion order.
func (s *Memory) ListProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// FindProduct looks a product up by identifier.
func (s *Memory) FindProduct(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ListBatches returns all stock batches in insertion order.
func (s *Memory) ListBatches() []StockBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StockBatch(nil), s.batches...)
}

// ListBatchesByProduct returns the batches owned by one product,
// preserving insertion order.
func (s *Memory) ListBatchesByProduct(productID string) []StockBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []StockBatch
	for _, b := range s.batches {
		if b.ProductID == productID {
			out = append(out, b)
		}
	}
	return out
}

// ListLedger returns the full transaction history in insertion order.
func (s *Memory) ListLedger() []LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]LedgerEntry(nil), s.ledger...)
}

// AppendProduct adds a product, assigning its identifier, active flag and
// creation timestamp.
func (s *Memory) AppendProduct(draft ProductDraft) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendProductLocked(draft)
}

// AppendBatch adds a stock batch, assigning its identifier.
func (s *Memory) AppendBatch(draft BatchDraft) StockBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendBatchLocked(draft)
}

// AppendLedgerEntry adds a ledger entry, assigning its identifier and
// timestamp.
func (s *Memory) AppendLedgerEntry(draft LedgerDraft) LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLedgerLocked(draft)
}

// Update runs fn while holding the write lock so a multi-record write
// (such as a goods receipt's batch plus ledger pair) appears atomically to
// readers. If fn returns an error every append made inside it is discarded.
func (s *Memory) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	checkpoint := struct {
		products, batches, ledger       int
		productSeq, batchSeq, ledgerSeq int
	}{
		len(s.products), len(s.batches), len(s.ledger),
		s.productSeq, s.batchSeq, s.ledgerSeq,
	}

	if err := fn(&Tx{store: s}); err != nil {
		s.products = s.products[:checkpoint.products]
		s.batches = s.batches[:checkpoint.batches]
		s.ledger = s.ledger[:checkpoint.ledger]
		s.productSeq = checkpoint.productSeq
		s.batchSeq = checkpoint.batchSeq
		s.ledgerSeq = checkpoint.ledgerSeq
		return err
	}
	return nil
}

// Tx exposes append operations inside an Update closure. It must not be
// retained after the closure returns.
type Tx struct {
	store *Memory
}

// AppendBatch adds a stock batch inside the transaction.
func (tx *Tx) AppendBatch(draft BatchDraft) StockBatch {
	return tx.store.appendBatchLocked(draft)
}

// AppendLedgerEntry adds a ledger entry inside the transaction.
func (tx *Tx) AppendLedgerEntry(draft LedgerDraft) LedgerEntry {
	return tx.store.appendLedgerLocked(draft)
}

func (s *Memory) appendProductLocked(draft ProductDraft) Product {
	s.productSeq++
	product := Product{
		ID:            fmt.Sprintf("p%d", s.productSeq),
		Name:          draft.Name,
		Strength:      draft.Strength,
		DosageForm:    draft.DosageForm,
		Category:      draft.Category,
		UnitPrice:     draft.UnitPrice,
		MinStockLevel: draft.MinStockLevel,
		IsActive:      true,
		CreatedAt:     s.now(),
	}
	s.products = append(s.products, product)
	return product
}

func (s *Memory) appendBatchLocked(draft BatchDraft) StockBatch {
	s.batchSeq++
	batch := StockBatch{
		ID:          fmt.Sprintf("b%d", s.batchSeq),
		BatchNumber: draft.BatchNumber,
		ExpiryDate:  draft.ExpiryDate,
		Quantity:    draft.Quantity,
		Status:      draft.Status,
		ProductID:   draft.ProductID,
		LocationID:  draft.LocationID,
	}
	s.batches = append(s.batches, batch)
	return batch
}

func (s *Memory) appendLedgerLocked(draft LedgerDraft) LedgerEntry {
	s.ledgerSeq++
	entry := LedgerEntry{
		ID:           fmt.Sprintf("l%d", s.ledgerSeq),
		Type:         draft.Type,
		Quantity:     draft.Quantity,
		ReferenceDoc: draft.ReferenceDoc,
		Reason:       draft.Reason,
		Timestamp:    s.now(),
		ProductID:    draft.ProductID,
		BatchID:      draft.BatchID,
		LocationID:   draft.LocationID,
		UserID:       draft.UserID,
		CreatedBy:    draft.CreatedBy,
	}
	s.ledger = append(s.ledger, entry)
	return entry
}
