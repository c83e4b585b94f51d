package reports

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers report endpoints onto the router. Exports are rate
// limited since they walk the full store on every call.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/dashboard", h.handleDashboard)
	r.Get("/consumption", h.handleConsumption)
	r.Get("/overview", h.handleOverview)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/ledger.csv", h.handleLedgerCSV)
		gr.Get("/stock.xlsx", h.handleStockXLSX)
	})
}
