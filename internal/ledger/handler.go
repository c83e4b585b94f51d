package ledger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pharmastock/pharmastock/internal/platform/httpx"
)

// Handler serves the transaction history endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the ledger HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers ledger endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Get("/", h.handleList)
}

type entryResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	ReferenceDoc string    `json:"referenceDoc,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"productId"`
	BatchID      string    `json:"batchId"`
	LocationID   string    `json:"locationId,omitempty"`
	UserID       string    `json:"userId"`
	CreatedBy    string    `json:"createdBy"`
	ProductName  string    `json:"productName"`
	BatchNumber  string    `json:"batchNumber"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list ledger", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]entryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, entryResponse{
			ID:           v.Entry.ID,
			Type:         string(v.Entry.Type),
			Quantity:     v.Entry.Quantity,
			ReferenceDoc: v.Entry.ReferenceDoc,
			Reason:       v.Entry.Reason,
			Timestamp:    v.Entry.Timestamp,
			ProductID:    v.Entry.ProductID,
			BatchID:      v.Entry.BatchID,
			LocationID:   v.Entry.LocationID,
			UserID:       v.Entry.UserID,
			CreatedBy:    v.Entry.CreatedBy,
			ProductName:  v.ProductName,
			BatchNumber:  v.BatchNumber,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}
