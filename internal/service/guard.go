// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

// Guard decides whether a session may use a capability.
type Guard interface {
	// Require returns [ErrDenied] when the role of the session does not
	// hold capability. For privileged capabilities it then reloads the
	// principal and returns [ErrAccountDisabled] if it was suspended since
	// the session was issued.
	Require(ctx context.Context, session models.Session, capability Capability) error
}

type guard struct {
	principals store.PrincipalRepository

	logger *logger.Logger
}

// NewGuard constructs a [Guard] that re-validates privileged requests
// against principals.
func NewGuard(principals store.PrincipalRepository, logger *logger.Logger) Guard {
	return &guard{principals: principals, logger: logger}
}

// Require implements [Guard]. The session snapshot is checked first so a
// denied request never touches storage. A token carries the role and the
// active flag as they were at login; the reload makes a suspension or a
// role mismatch take effect on the very next privileged request.
func (g *guard) Require(ctx context.Context, session models.Session, capability Capability) error {
	log := logger.FromContext(ctx)

	if !Allows(session.Role, capability) {
		log.Warn().
			Int64("principal_id", session.PrincipalID).
			Str("role", session.Role.String()).
			Str("capability", string(capability)).
			Msg("capability denied")
		return ErrDenied
	}
	if !capability.privileged() {
		return nil
	}
	if session.Anonymous() {
		return ErrDenied
	}

	principal, err := g.principals.FindPrincipalByID(ctx, session.PrincipalID)
	if errors.Is(err, store.ErrPrincipalNotFound) {
		return ErrDenied
	}
	if err != nil {
		return fmt.Errorf("reload principal: %w", err)
	}

	if !principal.Active {
		log.Info().Int64("principal_id", principal.ID).Msg("suspended principal rejected")
		return ErrAccountDisabled
	}
	if principal.Role != session.Role {
		return ErrDenied
	}

	return nil
}
