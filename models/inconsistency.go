package models

import "time"

// Inconsistency records a product that the ledger accepted but the catalog
// failed to store. Reconciliation resolves it once the catalog row exists.
type Inconsistency struct {
	ID           int64      `json:"id"`
	ProductID    string     `json:"product_id"`
	TxRef        string     `json:"tx_ref"`
	RegistrantID *int64     `json:"registrant_id,omitempty"`
	Reason       string     `json:"reason"`
	DetectedAt   time.Time  `json:"detected_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Inconsistency model.
func (i Inconsistency) TableName() string {
	return "inconsistencies"
}

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	// Scanned is the number of ledger registrations inspected.
	Scanned int `json:"scanned"`
	// Backfilled lists product ids inserted into the catalog by this pass.
	Backfilled []string `json:"backfilled"`
	// Resolved is the number of open inconsistencies closed by this pass.
	Resolved int `json:"resolved"`
}
