package tui

import "github.com/MKhiriev/go-provenance-keeper/models"

type verifyDoneMsg struct {
	result models.VerificationResult
	err    error
}

type versionLoadedMsg struct {
	version models.VersionResponse
	err     error
}

type copiedMsg struct {
	productID string
	err       error
}

type clearStatusMsg struct{}
