// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	want := models.Session{ID: "jti", PrincipalID: 42, Role: models.RoleAdmin, Active: true}
	ctx := WithSession(context.Background(), want)

	got, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	got, ok := GetSessionFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if !got.Anonymous() {
		t.Errorf("expected anonymous session, got %+v", got)
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")

	if _, ok := GetSessionFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
