package inventory

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pharmastock/pharmastock/internal/platform/httpx"
)

// Handler serves the inventory and goods receiving endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs the inventory HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) handleInventory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Inventory(r.Context())
	if err != nil {
		h.logger.Error("aggregate inventory", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]inventoryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toInventoryRowResponse(row))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) handleExpiryRisk(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ExpiryRisk(r.Context())
	if err != nil {
		h.logger.Error("build expiry risk report", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toRiskReportResponse(report))
}

func (h *Handler) handleReceive(w http.ResponseWriter, r *http.Request) {
	var req receiveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", fieldErrs[0].Error())
			return
		}
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "expiryDate must be a calendar date in YYYY-MM-DD form")
		return
	}

	batch, err := h.service.Receive(r.Context(), ReceiveInput{
		ProductID:    req.ProductID,
		BatchNumber:  req.BatchNumber,
		ExpiryDate:   expiry,
		Quantity:     req.Quantity,
		ReferenceDoc: req.ReferenceDoc,
	})
	if err != nil {
		h.logger.Warn("goods receipt rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("goods receipt posted",
		slog.String("batch_id", batch.ID),
		slog.String("product_id", batch.ProductID),
		slog.Int("quantity", batch.Quantity),
	)
	httpx.JSON(w, http.StatusCreated, ToBatchResponse(batch))
}
