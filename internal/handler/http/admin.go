package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPrincipals(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	principals, err := h.services.AdminService.ListPrincipals(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PrincipalList{Principals: nonNil(principals), Length: len(principals)}, http.StatusOK)
}

func (h *Handler) togglePrincipal(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	principalID, err := strconv.ParseInt(chi.URLParam(r, "principalID"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: principal id: %w", service.ErrInvalidDataProvided, err))
		return
	}

	principal, err := h.services.AdminService.ToggleActive(r.Context(), session, principalID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.AdminService.ListCatalog(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProductList{Products: nonNil(products), Length: len(products)}, http.StatusOK)
}

// listInconsistencies returns open entries; ?all=true includes resolved
// ones.
func (h *Handler) listInconsistencies(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	onlyOpen := true
	if raw := r.URL.Query().Get("all"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: all: %w", service.ErrInvalidDataProvided, err))
			return
		}
		onlyOpen = !all
	}

	list, err := h.services.AdminService.ListInconsistencies(r.Context(), session, onlyOpen)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.InconsistencyList{Inconsistencies: nonNil(list), Length: len(list)}, http.StatusOK)
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.AdminService.Reconcile(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
