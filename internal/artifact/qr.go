// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package artifact produces the scannable artifact handed out for each
// registered product: a QR code PNG encoding the product identifier.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/skip2/go-qrcode"
)

//go:generate mockgen -source=qr.go -destination=../mock/artifact_mock.go -package=mock

const qrSize = 256

var ErrEmptyContent = errors.New("nothing to encode")

// Encoder writes the artifact for a product identifier.
type Encoder interface {
	// Encode writes the artifact for productID and returns its file path.
	Encode(ctx context.Context, productID string) (string, error)
	// Path returns where the artifact of productID is, or would be, stored.
	Path(productID string) string
}

type qrEncoder struct {
	dir    string
	logger *logger.Logger
}

// NewQREncoder returns an [Encoder] writing <dir>/<escaped productID>.png.
func NewQREncoder(dir string, logger *logger.Logger) Encoder {
	return &qrEncoder{dir: dir, logger: logger}
}

func (e *qrEncoder) Path(productID string) string {
	return filepath.Join(e.dir, url.PathEscape(productID)+".png")
}

func (e *qrEncoder) Encode(ctx context.Context, productID string) (string, error) {
	if productID == "" {
		return "", ErrEmptyContent
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create qr dir: %w", err)
	}

	path := e.Path(productID)
	if err := qrcode.WriteFile(productID, qrcode.Medium, qrSize, path); err != nil {
		return "", fmt.Errorf("write qr code: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("product_id", productID).Str("path", path).Msg("qr code written")
	return path, nil
}
