// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-provenance-keeper/internal/app"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists under another method answers 404 with the usual JSON
// error body, so probing with the wrong verb does not reveal routes.
//
// If the router does match the method (chi can call the handler for
// mounted sub-routers) the request is served normally.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, models.ErrorResponse{Error: app.CodeNotFound, Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
