package reports

// DashboardStats is the system-wide rollup shown on the dashboard.
//
// TotalStockValue sums quantity times unit price across every batch
// regardless of status, while on-hand quantities elsewhere exclude
// non-active batches. The asymmetry is inherited behaviour and kept as is.
type DashboardStats struct {
	TotalStockValue float64 `json:"totalStockValue"`
	NearExpiryCount int     `json:"nearExpiryCount"`
	ExpiredCount    int     `json:"expiredCount"`
	SlowMovingCount int     `json:"slowMovingCount"`
	DeadStockCount  int     `json:"deadStockCount"`
}

// ConsumptionPoint is one category's wholesale issue total.
type ConsumptionPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Overview bundles the dashboard panels into a single payload.
type Overview struct {
	Stats       DashboardStats     `json:"stats"`
	Consumption []ConsumptionPoint `json:"consumption"`
}
