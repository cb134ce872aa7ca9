package models

import "time"

// Role is the closed set of principal kinds. Any value outside the three
// constants below is treated as having no capabilities at all.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManufacturer Role = "manufacturer"
	RoleConsumer     Role = "consumer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManufacturer, RoleConsumer:
		return true
	default:
		return false
	}
}

// SelfAssignable reports whether a role may be chosen at sign-up.
// Admins are only created by the bootstrap seed.
func (r Role) SelfAssignable() bool {
	return r == RoleManufacturer || r == RoleConsumer
}

func (r Role) String() string {
	return string(r)
}

// Principal is an authenticated actor of the system.
type Principal struct {
	// ID is the storage identifier of the principal.
	ID int64 `json:"id"`

	// Username is unique across all principals.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role is assigned at creation and never changes.
	Role Role `json:"role"`

	// Active is false when an admin suspended the account.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Principal model.
func (p Principal) TableName() string {
	return "principals"
}
