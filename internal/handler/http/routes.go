// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxRequestBody caps every request body after gzip inflation. Product ids
// are otherwise unbounded.
const maxRequestBody = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	router.Use(middleware.RequestSize(maxRequestBody))
	router.Use(h.withHashing)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signUp)
			r.Post("/login", h.login)
			r.With(h.auth).Post("/logout", h.logout)
		})

		r.Route("/products", func(r chi.Router) {
			// public: anyone holding a product may check it
			r.Get("/{productID}/verify", h.verifyProduct)
			r.Get("/{productID}/qr", h.productQR)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.registerProduct)
				r.Get("/mine", h.listOwnProducts)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/principals", h.listPrincipals)
			r.Post("/principals/{principalID}/toggle", h.togglePrincipal)
			r.Get("/products", h.listCatalog)
			r.Get("/inconsistencies", h.listInconsistencies)
			r.Post("/reconcile", h.reconcile)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS opens the API to the configured browser origins. An empty list
// lets any origin in, which suits the public verify route.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader, hashHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
