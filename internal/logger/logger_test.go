package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "provenance-server")

	l.Info().Str("product_id", "SKU-1").Msg("product registered")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "provenance-server", entry["role"])
	assert.Equal(t, "product registered", entry["message"])
	assert.Equal(t, "SKU-1", entry["product_id"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "provenance-server")

	child := parent.WithTraceID("trace-1")
	child.Info().Msg("request served")
	assert.Equal(t, "trace-1", decodeEntry(t, &buf)["trace_id"])

	buf.Reset()
	parent.Info().Msg("untouched")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "chaincode")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context { return c.Str("extra", "x") })

	parent.Info().Msg("parent")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "chaincode", entry["role"])
	assert.NotContains(t, entry, "extra")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := newLogger(&buf, "provenance-server").WithTraceID("abc")

	ctx := attached.WithContext(context.Background())
	FromContext(ctx).Info().Msg("hello")
	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])

	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := newLogger(&buf, "provenance-server").WithTraceID("req-1")

	r := httptest.NewRequest("GET", "/api/version", nil)
	r = r.WithContext(attached.WithContext(r.Context()))

	FromRequest(r).Info().Msg("hello")
	assert.Equal(t, "req-1", decodeEntry(t, &buf)["trace_id"])
}
