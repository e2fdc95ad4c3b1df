// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)
		r.Post("/register", h.register)

		r.Get("/version", h.getServerVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	// open demo collection
	router.Route("/api/crud", func(r chi.Router) {
		r.Get("/", h.getItems)
		r.Post("/", h.createItem)
		r.Put("/", h.updateItem)
		r.Delete("/", h.deleteItem)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/positions", func(r chi.Router) {
			r.Get("/", h.listPositions)
			r.Post("/", h.createPosition)
			r.Get("/{id}", h.getPosition)
			r.Put("/{id}", h.updatePosition)
			r.Delete("/{id}", h.deletePosition)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
