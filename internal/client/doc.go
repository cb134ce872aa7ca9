// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the lifecycle of the terminal verification
// client: it checks the server once at startup and then hands the terminal
// over to the UI until the user quits.
package client
