package catalog

import (
	"time"

	"github.com/pharmastock/pharmastock/internal/store"
)

type createProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Strength      string  `json:"strength"`
	DosageForm    string  `json:"dosageForm" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0"`
	MinStockLevel int     `json:"minStockLevel" validate:"gte=0"`
}

// ProductResponse is the wire representation of a catalog product.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Strength      string    `json:"strength"`
	DosageForm    string    `json:"dosageForm"`
	Category      string    `json:"category"`
	UnitPrice     float64   `json:"unitPrice"`
	MinStockLevel int       `json:"minStockLevel"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToProductResponse maps a stored product to its wire representation.
func ToProductResponse(p store.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Strength:      p.Strength,
		DosageForm:    string(p.DosageForm),
		Category:      string(p.Category),
		UnitPrice:     p.UnitPrice,
		MinStockLevel: p.MinStockLevel,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}
