package utils

import "github.com/google/uuid"

// UUIDGenerator issues session ids ("jti").
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate prefers time-ordered v7 ids so revocation rows cluster by issue
// time, and falls back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
