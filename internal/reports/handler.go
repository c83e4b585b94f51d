package reports

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/pharmastock/pharmastock/internal/inventory"
	"github.com/pharmastock/pharmastock/internal/ledger"
	"github.com/pharmastock/pharmastock/internal/platform/httpx"
)

// Handler serves the dashboard and report endpoints.
type Handler struct {
	logger           *slog.Logger
	service          *Service
	ledgerService    *ledger.Service
	inventoryService *inventory.Service
	now              func() time.Time
}

// NewHandler constructs the reports HTTP handler.
func NewHandler(logger *slog.Logger, service *Service, ledgerService *ledger.Service, inventoryService *inventory.Service) *Handler {
	return &Handler{
		logger:           logger,
		service:          service,
		ledgerService:    ledgerService,
		inventoryService: inventoryService,
		now:              time.Now,
	}
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.logger.Error("compute dashboard stats", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func (h *Handler) handleConsumption(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.ConsumptionByCategory(r.Context())
	if err != nil {
		h.logger.Error("compute consumption", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, points)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		h.logger.Error("compute overview", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, overview)
}

func (h *Handler) handleLedgerCSV(w http.ResponseWriter, r *http.Request) {
	views, err := h.ledgerService.List(r.Context())
	if err != nil {
		h.logger.Error("load ledger for export", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="stock-ledger.csv"`)
	if err := WriteLedgerCSV(w, views, h.now()); err != nil {
		// Headers are gone by now; log and cut the stream short.
		h.logger.Error("stream ledger csv", slog.Any("error", err))
	}
}

func (h *Handler) handleStockXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := h.inventoryService.Inventory(r.Context())
	if err != nil {
		h.logger.Error("load inventory for export", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	risk, err := h.inventoryService.ExpiryRisk(r.Context())
	if err != nil {
		h.logger.Error("load expiry risk for export", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	workbook, err := BuildStockWorkbook(rows, risk)
	if err != nil {
		h.logger.Error("build stock workbook", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	defer func() { _ = workbook.Close() }()

	buf := &bytes.Buffer{}
	if err := workbook.Write(buf); err != nil {
		h.logger.Error("write stock workbook", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="stock-report.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}
