// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-provenance-keeper/models"

// Capability names an operation subject to authorization.
type Capability string

const (
	CapRegisterProduct Capability = "register_product"
	CapListOwnProducts Capability = "list_own_products"
	CapAdminister      Capability = "administer"
	CapVerifyProduct   Capability = "verify_product"
)

// Allows is the single authorization table. A capability is held by exactly
// the roles listed here. Unknown roles and unknown capabilities hold nothing,
// except verify_product which is open to everyone including anonymous callers.
func Allows(role models.Role, capability Capability) bool {
	switch capability {
	case CapVerifyProduct:
		return true
	case CapRegisterProduct, CapListOwnProducts:
		return role == models.RoleManufacturer
	case CapAdminister:
		return role == models.RoleAdmin
	default:
		return false
	}
}

// privileged reports whether the capability needs a fresh look at the
// principal store before it is granted.
func (c Capability) privileged() bool {
	return c != CapVerifyProduct
}
