package inventory

import (
	"github.com/pharmastock/pharmastock/internal/catalog"
	"github.com/pharmastock/pharmastock/internal/store"
)

const dateLayout = "2006-01-02"

type receiveRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	BatchNumber  string `json:"batchNumber" validate:"required"`
	ExpiryDate   string `json:"expiryDate" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gt=0"`
	ReferenceDoc string `json:"referenceDoc"`
}

// BatchResponse is the wire representation of a stock batch. Expiry dates
// travel as calendar dates, not instants.
type BatchResponse struct {
	ID          string `json:"id"`
	BatchNumber string `json:"batchNumber"`
	ExpiryDate  string `json:"expiryDate"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	ProductID   string `json:"productId"`
	LocationID  string `json:"locationId,omitempty"`
}

// ToBatchResponse maps a stored batch to its wire representation.
func ToBatchResponse(b store.StockBatch) BatchResponse {
	return BatchResponse{
		ID:          b.ID,
		BatchNumber: b.BatchNumber,
		ExpiryDate:  b.ExpiryDate.Format(dateLayout),
		Quantity:    b.Quantity,
		Status:      string(b.Status),
		ProductID:   b.ProductID,
		LocationID:  b.LocationID,
	}
}

type inventoryRowResponse struct {
	catalog.ProductResponse
	OnHandQuantity int             `json:"onHandQuantity"`
	Health         HealthStatus    `json:"health"`
	StockValue     float64         `json:"stockValue"`
	Batches        []BatchResponse `json:"batches"`
}

func toInventoryRowResponse(row InventoryRow) inventoryRowResponse {
	batches := make([]BatchResponse, 0, len(row.Batches))
	for _, b := range row.Batches {
		batches = append(batches, ToBatchResponse(b))
	}
	return inventoryRowResponse{
		ProductResponse: catalog.ToProductResponse(row.Product),
		OnHandQuantity:  row.OnHandQuantity,
		Health:          row.Health,
		StockValue:      row.StockValue,
		Batches:         batches,
	}
}

type riskItemResponse struct {
	BatchResponse
	ProductName     string     `json:"productName"`
	Risk            ExpiryRisk `json:"risk"`
	DaysUntilExpiry int        `json:"daysUntilExpiry"`
}

type riskReportResponse struct {
	Items   []riskItemResponse  `json:"items"`
	Summary riskSummaryResponse `json:"summary"`
}

type riskSummaryResponse struct {
	Expired    int `json:"expired"`
	Critical   int `json:"critical"`
	NearExpiry int `json:"nearExpiry"`
	Safe       int `json:"safe"`
}

func toRiskReportResponse(report RiskReport) riskReportResponse {
	items := make([]riskItemResponse, 0, len(report.Items))
	for _, item := range report.Items {
		items = append(items, riskItemResponse{
			BatchResponse:   ToBatchResponse(item.Batch),
			ProductName:     item.Product.Name,
			Risk:            item.Risk,
			DaysUntilExpiry: item.DaysUntilExpiry,
		})
	}
	return riskReportResponse{
		Items: items,
		Summary: riskSummaryResponse{
			Expired:    report.Summary.Expired,
			Critical:   report.Summary.Critical,
			NearExpiry: report.Summary.NearExpiry,
			Safe:       report.Summary.Safe,
		},
	}
}
