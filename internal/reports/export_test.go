package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmastock/pharmastock/internal/inventory"
	"github.com/pharmastock/pharmastock/internal/ledger"
	"github.com/pharmastock/pharmastock/internal/store"
)

func TestWriteLedgerCSV(t *testing.T) {
	entry := store.LedgerEntry{
		ID: "l1", Type: store.TransactionTypeGRN, Quantity: 150,
		ReferenceDoc: "PO-1001",
		Timestamp:    time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
		ProductID:    "p1", BatchID: "b1", CreatedBy: "Admin",
	}
	views := []ledger.View{{Entry: entry, ProductName: "Ibuprofen", BatchNumber: "BATCH-1"}}

	var buf bytes.Buffer
	err := WriteLedgerCSV(&buf, views, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "# Stock Ledger export"))
	require.Equal(t, "ID,Type,Product,Batch,Quantity,Reference Doc,Reason,Timestamp,User", lines[1])
	require.Contains(t, lines[2], "l1,GRN,Ibuprofen,BATCH-1,150,PO-1001")
}

func TestBuildStockWorkbook(t *testing.T) {
	product := store.Product{
		ID: "p1", Name: "Ibuprofen", Strength: "400mg",
		Category: store.CategoryAnalgesic, DosageForm: store.DosageFormTablet,
		UnitPrice: 2.00, MinStockLevel: 100,
	}
	batch := store.StockBatch{
		ID: "b1", BatchNumber: "BATCH-1", ProductID: "p1", Quantity: 150,
		Status: store.BatchStatusActive, ExpiryDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	rows := []inventory.InventoryRow{{
		Product: product, OnHandQuantity: 150, Health: inventory.HealthHealthy,
		StockValue: 300.00, Batches: []store.StockBatch{batch},
	}}
	risk := inventory.RiskReport{
		Items: []inventory.RiskItem{{
			Batch: batch, Product: product,
			Risk: inventory.RiskCritical, DaysUntilExpiry: 16,
		}},
		Summary: inventory.RiskSummary{Critical: 1},
	}

	f, err := BuildStockWorkbook(rows, risk)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.ElementsMatch(t, []string{"Inventory", "Expiry Risk"}, f.GetSheetList())

	name, err := f.GetCellValue("Inventory", "B2")
	require.NoError(t, err)
	require.Equal(t, "Ibuprofen", name)

	riskCell, err := f.GetCellValue("Expiry Risk", "G2")
	require.NoError(t, err)
	require.Equal(t, string(inventory.RiskCritical), riskCell)
}
