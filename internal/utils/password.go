package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the password
// does not match the hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordHasher hashes and checks passwords with bcrypt.
type PasswordHasher struct {
	cost int
	// dummy is compared against when the principal does not exist so the
	// response time does not reveal whether a username is registered.
	dummy []byte
}

// NewPasswordHasher returns a PasswordHasher using cost, or bcrypt.DefaultCost
// when cost is out of bcrypt's range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummy, _ := bcrypt.GenerateFromPassword([]byte("provenance-dummy-password"), cost)
	return &PasswordHasher{cost: cost, dummy: dummy}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Compare checks password against hash in constant time.
func (h *PasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}

	return nil
}

// CompareDummy burns the same amount of time as Compare for a username
// that does not exist. The result is always ErrPasswordMismatch.
func (h *PasswordHasher) CompareDummy(password string) error {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password+"\x00"))
	return ErrPasswordMismatch
}
