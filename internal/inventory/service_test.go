package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmastock/pharmastock/internal/shared"
	"github.com/pharmastock/pharmastock/internal/store"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	st := store.New()
	st.WithNow(func() time.Time { return testNow })
	svc := NewService(st)
	svc.WithNow(func() time.Time { return testNow })
	return svc, st
}

func defineProduct(st *store.Memory, name string, unitPrice float64, minStock int) store.Product {
	return st.AppendProduct(store.ProductDraft{
		Name:          name,
		Strength:      "400mg",
		DosageForm:    store.DosageFormTablet,
		Category:      store.CategoryAnalgesic,
		UnitPrice:     unitPrice,
		MinStockLevel: minStock,
	})
}

func TestInventoryProductWithoutBatches(t *testing.T) {
	svc, st := newTestService(t)
	defineProduct(st, "Ibuprofen", 2.00, 100)

	rows, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Zero(t, rows[0].OnHandQuantity)
	require.Equal(t, HealthOutOfStock, rows[0].Health)
	require.Empty(t, rows[0].Batches)
}

func TestInventoryExcludesNonActiveFromOnHand(t *testing.T) {
	svc, st := newTestService(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	st.AppendBatch(store.BatchDraft{
		BatchNumber: "BATCH-1", ProductID: p.ID, Quantity: 150,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, 120),
	})
	st.AppendBatch(store.BatchDraft{
		BatchNumber: "BATCH-2", ProductID: p.ID, Quantity: 40,
		Status: store.BatchStatusQuarantine, ExpiryDate: testNow.AddDate(0, 0, 120),
	})

	rows, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 150, rows[0].OnHandQuantity)
	// The quarantined batch still shows up in the batch list.
	require.Len(t, rows[0].Batches, 2)
	require.Equal(t, HealthHealthy, rows[0].Health)
	require.InDelta(t, 300.00, rows[0].StockValue, 0.001)
}

func TestInventoryIsIdempotent(t *testing.T) {
	svc, st := newTestService(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)
	st.AppendBatch(store.BatchDraft{
		BatchNumber: "BATCH-1", ProductID: p.ID, Quantity: 150,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, 120),
	})

	first, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	second, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestReceiveCreatesBatchAndLedgerEntry(t *testing.T) {
	svc, st := newTestService(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	batch, err := svc.Receive(context.Background(), ReceiveInput{
		ProductID:    p.ID,
		BatchNumber:  "BATCH-1",
		ExpiryDate:   testNow.AddDate(0, 0, 120),
		Quantity:     150,
		ReferenceDoc: "PO-1001",
	})
	require.NoError(t, err)
	require.Equal(t, "b1", batch.ID)
	require.Equal(t, store.BatchStatusActive, batch.Status)

	ledger := st.ListLedger()
	require.Len(t, ledger, 1)
	entry := ledger[0]
	require.Equal(t, store.TransactionTypeGRN, entry.Type)
	require.Equal(t, 150, entry.Quantity)
	require.Equal(t, "PO-1001", entry.ReferenceDoc)
	require.Equal(t, batch.ID, entry.BatchID)
	require.Equal(t, p.ID, entry.ProductID)
	require.Equal(t, testNow, entry.Timestamp)
	require.Equal(t, "admin", entry.UserID)
	require.Equal(t, "Admin", entry.CreatedBy)
}

func TestReceiveRecordsActorFromContext(t *testing.T) {
	svc, st := newTestService(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	ctx := shared.ContextWithActor(context.Background(), shared.Actor{ID: "u7", Name: "R. Osei"})
	_, err := svc.Receive(ctx, ReceiveInput{
		ProductID:   p.ID,
		BatchNumber: "BATCH-1",
		ExpiryDate:  testNow.AddDate(0, 0, 120),
		Quantity:    10,
	})
	require.NoError(t, err)
	entry := st.ListLedger()[0]
	require.Equal(t, "u7", entry.UserID)
	require.Equal(t, "R. Osei", entry.CreatedBy)
}

func TestReceiveRejectsInvalidInputWithoutWriting(t *testing.T) {
	svc, st := newTestService(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	valid := ReceiveInput{
		ProductID:   p.ID,
		BatchNumber: "BATCH-1",
		ExpiryDate:  testNow.AddDate(0, 0, 120),
		Quantity:    150,
	}

	cases := []struct {
		name    string
		mutate  func(*ReceiveInput)
		wantErr error
	}{
		{"missing product", func(in *ReceiveInput) { in.ProductID = "" }, ErrProductRequired},
		{"unknown product", func(in *ReceiveInput) { in.ProductID = "p99" }, ErrProductNotFound},
		{"missing batch number", func(in *ReceiveInput) { in.BatchNumber = "" }, ErrBatchNumberRequired},
		{"zero expiry", func(in *ReceiveInput) { in.ExpiryDate = time.Time{} }, ErrInvalidExpiryDate},
		{"zero quantity", func(in *ReceiveInput) { in.Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(in *ReceiveInput) { in.Quantity = -5 }, ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := svc.Receive(context.Background(), input)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, st.ListBatches())
			require.Empty(t, st.ListLedger())
		})
	}

	// Typed failures map onto the shared taxonomy.
	_, err := svc.Receive(context.Background(), ReceiveInput{ProductID: "p99", BatchNumber: "B", ExpiryDate: testNow, Quantity: 1})
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.Receive(context.Background(), ReceiveInput{ProductID: p.ID, BatchNumber: "", ExpiryDate: testNow, Quantity: 1})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestExpiryRiskReport(t *testing.T) {
	svc, st := newTestService(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	st.AppendBatch(store.BatchDraft{
		BatchNumber: "OLD", ProductID: p.ID, Quantity: 5,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, -3),
	})
	st.AppendBatch(store.BatchDraft{
		BatchNumber: "SOON", ProductID: p.ID, Quantity: 10,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, 10),
	})
	st.AppendBatch(store.BatchDraft{
		BatchNumber: "LATER", ProductID: p.ID, Quantity: 20,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, 45),
	})
	st.AppendBatch(store.BatchDraft{
		BatchNumber: "FINE", ProductID: p.ID, Quantity: 30,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, 200),
	})

	report, err := svc.ExpiryRisk(context.Background())
	require.NoError(t, err)

	// Only expired and critical batches are listed, soonest first.
	require.Len(t, report.Items, 2)
	require.Equal(t, "OLD", report.Items[0].Batch.BatchNumber)
	require.Equal(t, RiskExpired, report.Items[0].Risk)
	require.Equal(t, -3, report.Items[0].DaysUntilExpiry)
	require.Equal(t, "SOON", report.Items[1].Batch.BatchNumber)
	require.Equal(t, RiskCritical, report.Items[1].Risk)
	require.Equal(t, "Ibuprofen", report.Items[1].Product.Name)

	require.Equal(t, RiskSummary{Expired: 1, Critical: 1, NearExpiry: 1, Safe: 1}, report.Summary)
}
