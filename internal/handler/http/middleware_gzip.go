package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-provenance-keeper/internal/app"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

var (
	compressors   = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	decompressors = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that send Accept-Encoding: gzip. Both directions reuse pooled
// gzip state.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasGzip(r.Header.Get("Content-Encoding")) && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				utils.WriteJSON(w, models.ErrorResponse{Error: app.CodeInvalidInput, Message: "invalid gzip body"}, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !hasGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		zw := compressors.Get().(*gzip.Writer)
		zw.Reset(w)
		cw := &compressWriter{ResponseWriter: w, zw: zw}

		next.ServeHTTP(cw, r)

		if cw.compressing {
			_ = zw.Close()
		}
		compressors.Put(zw)
	})
}

func hasGzip(header string) bool {
	return strings.Contains(header, "gzip")
}

// inflate wraps body in a pooled gzip.Reader that is returned to the pool on
// Close.
func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := decompressors.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		decompressors.Put(zr)
		return nil, err
	}

	return &pooledReader{Reader: zr, release: func() {
		_ = zr.Close()
		_ = body.Close()
		decompressors.Put(zr)
	}}, nil
}

type pooledReader struct {
	io.Reader
	once    sync.Once
	release func()
}

func (p *pooledReader) Close() error {
	p.once.Do(p.release)
	return nil
}

// compressWriter gzips every response that can carry a body. 204 and 304
// are passed through untouched.
type compressWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	compressing bool
}

func (c *compressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		c.compressing = true
		c.Header().Set("Content-Encoding", "gzip")
		c.Header().Del("Content-Length")
	}
	c.ResponseWriter.WriteHeader(statusCode)
}

func (c *compressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.compressing {
		return c.zw.Write(p)
	}
	return c.ResponseWriter.Write(p)
}
