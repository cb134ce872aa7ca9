// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VerificationStatus is the ledger's verdict for a product identifier.
type VerificationStatus string

const (
	StatusGenuine      VerificationStatus = "genuine"
	StatusUnregistered VerificationStatus = "unregistered"
)

// LedgerRegistration is an entry of the append-only ledger.
// TxRef is empty until the ledger has accepted the entry.
type LedgerRegistration struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	TxRef        string `json:"tx_ref,omitempty"`
}

// VerificationResult is what the ledger answers for a product identifier.
// Name and Manufacturer are empty when Status is StatusUnregistered.
type VerificationResult struct {
	ProductID    string             `json:"product_id"`
	Name         string             `json:"name"`
	Manufacturer string             `json:"manufacturer"`
	Status       VerificationStatus `json:"status"`
}

// Genuine reports whether the ledger knows the product.
func (v VerificationResult) Genuine() bool {
	return v.Status == StatusGenuine
}

// UnregisteredResult builds the answer for an unknown product identifier.
func UnregisteredResult(productID string) VerificationResult {
	return VerificationResult{ProductID: productID, Status: StatusUnregistered}
}
