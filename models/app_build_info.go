// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// AppBuildInfo is the -ldflags metadata of a server or client binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo replaces empty values with NotAvailable.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(v string) string {
		if v == "" {
			return NotAvailable
		}
		return v
	}

	return AppBuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// Stamped reports whether a release version was injected at build time.
func (a AppBuildInfo) Stamped() bool {
	return a.Version != "" && a.Version != NotAvailable
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}
