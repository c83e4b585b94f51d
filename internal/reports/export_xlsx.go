package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pharmastock/pharmastock/internal/inventory"
)

const expiryDateLayout = "2006-01-02"

// BuildStockWorkbook renders the inventory and expiry risk views as an
// xlsx workbook with one sheet per view.
func BuildStockWorkbook(rows []inventory.InventoryRow, risk inventory.RiskReport) (*excelize.File, error) {
	f := excelize.NewFile()

	inventorySheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(inventorySheet, "Inventory"); err != nil {
		return nil, fmt.Errorf("reports: rename inventory sheet: %w", err)
	}
	header := []interface{}{
		"Product ID", "Name", "Strength", "Category", "Dosage Form",
		"On Hand", "Min Level", "Health", "Unit Price", "Stock Value",
	}
	if err := setRow(f, "Inventory", 1, header); err != nil {
		return nil, err
	}
	rowIdx := 2
	for _, row := range rows {
		record := []interface{}{
			row.Product.ID,
			row.Product.Name,
			row.Product.Strength,
			string(row.Product.Category),
			string(row.Product.DosageForm),
			row.OnHandQuantity,
			row.Product.MinStockLevel,
			string(row.Health),
			row.Product.UnitPrice,
			row.StockValue,
		}
		if err := setRow(f, "Inventory", rowIdx, record); err != nil {
			return nil, err
		}
		rowIdx++
	}

	if _, err := f.NewSheet("Expiry Risk"); err != nil {
		return nil, fmt.Errorf("reports: create expiry sheet: %w", err)
	}
	riskHeader := []interface{}{
		"Batch ID", "Batch Number", "Product", "Expiry Date", "Days Until Expiry", "Quantity", "Risk",
	}
	if err := setRow(f, "Expiry Risk", 1, riskHeader); err != nil {
		return nil, err
	}
	rowIdx = 2
	for _, item := range risk.Items {
		record := []interface{}{
			item.Batch.ID,
			item.Batch.BatchNumber,
			item.Product.Name,
			item.Batch.ExpiryDate.Format(expiryDateLayout),
			item.DaysUntilExpiry,
			item.Batch.Quantity,
			string(item.Risk),
		}
		if err := setRow(f, "Expiry Risk", rowIdx, record); err != nil {
			return nil, err
		}
		rowIdx++
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("reports: cell coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("reports: write sheet row: %w", err)
	}
	return nil
}
