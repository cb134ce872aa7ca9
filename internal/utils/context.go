// Package utils holds the small helpers shared by the server and the
// verification client: session tokens, the request session context key,
// response signing and JSON writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated models.Session
// in the request context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session from the context.
//
// When no session is stored the anonymous session and ok == false are returned.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
