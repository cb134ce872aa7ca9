// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProductSource tells how a catalog row came to exist.
type ProductSource string

const (
	// SourceRegistration marks rows written by the registration workflow.
	SourceRegistration ProductSource = "registration"
	// SourceReconciliation marks rows backfilled from the ledger.
	SourceReconciliation ProductSource = "reconciliation"
)

// Product is a catalog record: the searchable mirror of a ledger
// registration plus attribution to the principal that submitted it.
//
// A Product row exists only for a product that was accepted by the ledger;
// TxRef always points at that accepted submission.
type Product struct {
	// ProductID is the caller supplied unique identifier.
	ProductID string `json:"product_id"`

	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`

	// TxRef is the ledger transaction reference returned on registration.
	TxRef string `json:"tx_ref"`

	// RegistrantID is nil for rows backfilled by reconciliation.
	RegistrantID *int64 `json:"registrant_id,omitempty"`

	// RegistrantUsername is filled only by joined listings.
	RegistrantUsername string `json:"registrant_username,omitempty"`

	Source    ProductSource `json:"source"`
	CreatedAt time.Time     `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// RegistrationRequest is the input of the registration workflow.
type RegistrationRequest struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
}

// LedgerRegistration returns the ledger payload for the request.
func (r RegistrationRequest) LedgerRegistration() LedgerRegistration {
	return LedgerRegistration{
		ProductID:    r.ProductID,
		Name:         r.Name,
		Manufacturer: r.Manufacturer,
	}
}
