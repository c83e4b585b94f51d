package inventory

import "time"

// ClassifyHealth derives the stock health label from on-hand quantity
// versus the minimum stock level. First match wins, and a quantity equal
// to the minimum counts as healthy, not low.
func ClassifyHealth(onHandQuantity, minStockLevel int) HealthStatus {
	if onHandQuantity == 0 {
		return HealthOutOfStock
	}
	if onHandQuantity < minStockLevel {
		return HealthLowStock
	}
	return HealthHealthy
}

// DaysUntil returns the whole calendar-day difference between expiry and
// now, negative once the expiry date has passed. Both instants are
// truncated to their date before comparison so the result never depends
// on time of day.
func DaysUntil(expiry, now time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(n).Hours() / 24)
}

// ClassifyExpiryRisk buckets a batch by days until expiry relative to now.
func ClassifyExpiryRisk(expiry, now time.Time) ExpiryRisk {
	days := DaysUntil(expiry, now)
	switch {
	case days < 0:
		return RiskExpired
	case days < criticalWindowDays:
		return RiskCritical
	case days < nearExpiryWindowDays:
		return RiskNearExpiry
	default:
		return RiskSafe
	}
}
