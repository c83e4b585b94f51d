package reports

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pharmastock/pharmastock/internal/store"
)

// Batches expiring inside this window, but not yet expired, count as near
// expiry on the dashboard. Distinct from the 30/90 day risk tiers.
const nearExpiryWindowDays = 60

// Service computes dashboard and report rollups. Every call recomputes
// from a fresh store snapshot.
type Service struct {
	store *store.Memory
	now   func() time.Time
}

// NewService builds Service.
func NewService(st *store.Memory) *Service {
	return &Service{store: st, now: time.Now}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// DashboardStats computes the system-wide stock rollup.
func (s *Service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	now := s.now()
	horizon := now.AddDate(0, 0, nearExpiryWindowDays)
	products := s.store.ListProducts()
	batches := s.store.ListBatches()

	priceByProduct := make(map[string]float64, len(products))
	for _, p := range products {
		priceByProduct[p.ID] = p.UnitPrice
	}

	var stats DashboardStats
	for _, b := range batches {
		// Stock value counts every batch, whatever its status.
		stats.TotalStockValue += float64(b.Quantity) * priceByProduct[b.ProductID]

		if b.Status == store.BatchStatusActive && b.ExpiryDate.After(now) && !b.ExpiryDate.After(horizon) {
			stats.NearExpiryCount++
		}
		// Expired by date or by explicit status, either suffices.
		if b.ExpiryDate.Before(now) || b.Status == store.BatchStatusExpired {
			stats.ExpiredCount++
		}
	}
	// No velocity rule exists yet for slow moving or dead stock; both stay
	// fixed at zero.
	return stats, nil
}

// ConsumptionByCategory sums wholesale issue quantities per category. Only
// categories present among defined products appear; an empty catalog
// yields an empty result.
func (s *Service) ConsumptionByCategory(ctx context.Context) ([]ConsumptionPoint, error) {
	products := s.store.ListProducts()
	entries := s.store.ListLedger()

	var order []store.Category
	seen := make(map[store.Category]bool)
	categoryByProduct := make(map[string]store.Category, len(products))
	for _, p := range products {
		categoryByProduct[p.ID] = p.Category
		if !seen[p.Category] {
			seen[p.Category] = true
			order = append(order, p.Category)
		}
	}

	totals := make(map[store.Category]int)
	for _, e := range entries {
		if e.Type != store.TransactionTypeWholesaleIssue {
			continue
		}
		if cat, ok := categoryByProduct[e.ProductID]; ok {
			totals[cat] += e.Quantity
		}
	}

	out := make([]ConsumptionPoint, 0, len(order))
	for _, cat := range order {
		out = append(out, ConsumptionPoint{Name: string(cat), Value: totals[cat]})
	}
	return out, nil
}

// Overview loads the dashboard panels concurrently.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var overview Overview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.DashboardStats(ctx)
		if err != nil {
			return err
		}
		overview.Stats = stats
		return nil
	})
	g.Go(func() error {
		consumption, err := s.ConsumptionByCategory(ctx)
		if err != nil {
			return err
		}
		overview.Consumption = consumption
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return overview, nil
}
