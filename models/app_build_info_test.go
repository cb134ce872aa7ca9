package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	unstamped := NewAppBuildInfo("", "", "")
	assert.Equal(t, AppBuildInfo{Version: NotAvailable, Date: NotAvailable, Commit: NotAvailable}, unstamped)
	assert.False(t, unstamped.Stamped())

	release := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")
	assert.True(t, release.Stamped())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: abc123", release.String())
}
