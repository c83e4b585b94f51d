package inventory

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pharmastock/pharmastock/internal/store"
)

func newTestRouter(t *testing.T) (*chi.Mux, *store.Memory) {
	t.Helper()
	st := store.New()
	st.WithNow(func() time.Time { return testNow })
	svc := NewService(st)
	svc.WithNow(func() time.Time { return testNow })
	h := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

	r := chi.NewRouter()
	r.Route("/inventory", h.MountRoutes)
	return r, st
}

func TestHandleReceive(t *testing.T) {
	r, st := newTestRouter(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	body := `{"productId":"` + p.ID + `","batchNumber":"BATCH-1","expiryDate":"2024-10-13","quantity":150,"referenceDoc":"PO-1001"}`
	req := httptest.NewRequest(http.MethodPost, "/inventory/grn", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "b1", resp.ID)
	require.Equal(t, "2024-10-13", resp.ExpiryDate)
	require.Equal(t, string(store.BatchStatusActive), resp.Status)
}

func TestHandleReceiveValidation(t *testing.T) {
	r, st := newTestRouter(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)

	cases := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"zero quantity", `{"productId":"` + p.ID + `","batchNumber":"B1","expiryDate":"2024-10-13","quantity":0}`, http.StatusBadRequest},
		{"malformed expiry", `{"productId":"` + p.ID + `","batchNumber":"B1","expiryDate":"13/10/2024","quantity":5}`, http.StatusBadRequest},
		{"unknown product", `{"productId":"p99","batchNumber":"B1","expiryDate":"2024-10-13","quantity":5}`, http.StatusNotFound},
		{"malformed json", `{"productId":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/inventory/grn", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			require.Equal(t, tc.wantCode, rec.Code)
		})
	}

	// No partial writes reached the store.
	require.Empty(t, st.ListBatches())
	require.Empty(t, st.ListLedger())
}

func TestHandleInventory(t *testing.T) {
	r, st := newTestRouter(t)
	p := defineProduct(st, "Ibuprofen", 2.00, 100)
	st.AppendBatch(store.BatchDraft{
		BatchNumber: "BATCH-1", ProductID: p.ID, Quantity: 150,
		Status: store.BatchStatusActive, ExpiryDate: testNow.AddDate(0, 0, 120),
	})

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "Ibuprofen", rows[0]["name"])
	require.EqualValues(t, 150, rows[0]["onHandQuantity"])
	require.Equal(t, string(HealthHealthy), rows[0]["health"])
}
