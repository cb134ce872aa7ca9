package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/go-chi/chi/v5"
)

// productIDParam returns the unescaped {productID} path segment.
func productIDParam(r *http.Request) (string, error) {
	productID, err := url.PathUnescape(chi.URLParam(r, "productID"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return productID, nil
}

// qrPath is the API path of the QR artifact of productID.
func qrPath(productID string) string {
	return "/api/products/" + url.PathEscape(productID) + "/qr"
}

func (h *Handler) registerProduct(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.RegistrationRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	product, err := h.services.RegistrationService.SubmitRegistration(r.Context(), session, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegistrationResponse{Product: product, QRPath: qrPath(product.ProductID)}, http.StatusCreated)
}

func (h *Handler) listOwnProducts(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.RegistrationService.ListOwnProducts(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProductList{Products: nonNil(products), Length: len(products)}, http.StatusOK)
}

// verifyProduct is public. An unknown product is a 200 with status
// "unregistered".
func (h *Handler) verifyProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.VerificationService.Verify(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// productQR serves the PNG written at registration time.
func (h *Handler) productQR(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.encoder == nil {
		writeError(w, r, ErrArtifactNotFound)
		return
	}

	path := h.encoder.Path(productID)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		writeError(w, r, ErrArtifactNotFound)
		return
	}
	if err != nil {
		writeError(w, r, fmt.Errorf("open qr code: %w", err))
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		writeError(w, r, fmt.Errorf("stat qr code: %w", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeContent(w, r, filepath.Base(path), stat.ModTime(), f)
}

// nonNil keeps empty listings as [] in JSON.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
