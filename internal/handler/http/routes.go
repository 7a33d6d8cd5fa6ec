// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/plants", func(r chi.Router) {
			r.Get("/", h.listPlants)
			r.Post("/", h.createPlant)

			r.Route("/info", func(r chi.Router) {
				r.Get("/", h.getSpeciesInfo)
				r.Post("/", h.saveSpeciesInfo)
				r.Put("/", h.replaceSpeciesInfo)
				r.Delete("/", h.deleteSpeciesInfo)
				r.Post("/generate", h.generateSpeciesInfo)
			})

			r.Route("/{plantID}", func(r chi.Router) {
				r.Get("/", h.getPlant)
				r.Delete("/", h.archivePlant)
				r.Post("/water", h.waterPlant)

				r.Get("/notes", h.getNotes)
				r.Post("/notes", h.addNote)
				r.Delete("/notes/{noteID}", h.deleteNote)

				r.Post("/photos", h.addPhoto)
				r.Delete("/photos/{photoID}", h.deletePhoto)

				r.Get("/tip", h.dailyTip)
				r.Post("/tip", h.regenerateTip)
			})
		})

		r.Post("/generate-fertilizer", h.generateFertilizer)
		r.Post("/deepseek", h.chat)
		r.Post("/chat", h.chat)
	})

	router.MethodNotAllowed(methodNotAllowed)
	router.NotFound(notFound)

	return router
}
