package domain

// RevenueSnapshot is one pre-aggregated month of revenue for the dashboard
// chart. Snapshots are read-only reporting rows; this system never writes
// them.
type RevenueSnapshot struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
