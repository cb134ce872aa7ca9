// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks registration input, product ids and principal
// credentials before they reach the ledger or the catalog.
package validators

import "context"

// Validator checks v. When fields are given only those fields are checked,
// e.g. Validate(ctx, req, "name") after the product id was checked alone.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
