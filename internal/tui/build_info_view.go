// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server string) string {
	var b strings.Builder

	b.WriteString("Application: provenance verifier\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))
	b.WriteString("\n\n")
	b.WriteString("Server version: ")
	b.WriteString(valueOrNA(server))

	return renderPage("ABOUT", b.String(), "esc: back")
}
