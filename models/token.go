package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token.
//
// Besides the registered claims it carries a snapshot of the principal
// (username, role, active flag) taken at login. The snapshot is only a hint:
// privileged operations re-read the principal from storage.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     Role   `json:"role"`
	Active   bool   `json:"active"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// PrincipalID is the parsed "sub" claim.
	PrincipalID int64 `json:"-"`
}

// GetPrincipalID parses the "sub" claim as a base-10 int64.
func (t *Token) GetPrincipalID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting PrincipalID from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting PrincipalID from token to int64: %w", err)
	}

	return id, nil
}

// Session converts the token claims into a Session.
func (t *Token) Session() Session {
	s := Session{
		ID:          t.ID,
		PrincipalID: t.PrincipalID,
		Username:    t.Username,
		Role:        t.Role,
		Active:      t.Active,
	}
	if t.IssuedAt != nil {
		s.IssuedAt = t.IssuedAt.Time
	}
	if t.ExpiresAt != nil {
		s.ExpiresAt = t.ExpiresAt.Time
	}

	return s
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the authenticated context of a request.
// The zero value is the anonymous session.
type Session struct {
	// ID is the token id ("jti"), used for logout revocation.
	ID          string    `json:"id"`
	PrincipalID int64     `json:"principal_id"`
	Username    string    `json:"username"`
	Role        Role      `json:"role"`
	Active      bool      `json:"active"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Anonymous reports whether the session belongs to no principal.
func (s Session) Anonymous() bool {
	return s.PrincipalID == 0
}
