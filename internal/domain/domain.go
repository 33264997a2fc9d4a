// Package domain holds the agency's business records: clients, the projects run for them, the
// payments they owe, and the activity feed that records every change to those three.
//
// Every record belongs to exactly one owner, the account that created it. Identities are
// database-assigned and unique across owners.
package domain

import "time"

// EntityType names the kind of record an Activity points at.
type EntityType string

const (
	EntityClient  EntityType = "client"
	EntityProject EntityType = "project"
	EntityPayment EntityType = "payment"
)

// DashboardStats is the per-owner summary shown on the dashboard. It is computed on every read.
type DashboardStats struct {
	ActiveClients   int64   `json:"active_clients"`
	ActiveProjects  int64   `json:"active_projects"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	PendingInvoices float64 `json:"pending_invoices"`
}

// MonthStart returns the first instant of now's month in now's location.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
