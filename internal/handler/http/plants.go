// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// listPlants answers GET /plants. The optional ?archived=true|false narrows
// the list; without it every plant is returned.
func (h *Handler) listPlants(w http.ResponseWriter, r *http.Request) {
	filter := models.PlantFilter{
		Archived: models.ArchivedFilter(r.URL.Query().Get("archived")),
	}

	plants, err := h.services.PlantService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listPlants")
		return
	}
	if plants == nil {
		plants = []models.Plant{}
	}

	utils.WriteJSON(w, plants, http.StatusOK)
}

func (h *Handler) createPlant(w http.ResponseWriter, r *http.Request) {
	var in models.PlantInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "*Handler.createPlant")
		return
	}

	plant, err := h.services.PlantService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "*Handler.createPlant")
		return
	}

	utils.WriteJSON(w, plant, http.StatusCreated)
}

func (h *Handler) getPlant(w http.ResponseWriter, r *http.Request) {
	plant, err := h.services.PlantService.Get(r.Context(), chi.URLParam(r, "plantID"))
	if err != nil {
		writeError(w, r, err, "*Handler.getPlant")
		return
	}

	utils.WriteJSON(w, plant, http.StatusOK)
}

// archivePlant answers DELETE /plants/{id}. The plant is kept and flagged
// as archived.
func (h *Handler) archivePlant(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PlantService.Archive(r.Context(), chi.URLParam(r, "plantID")); err != nil {
		writeError(w, r, err, "*Handler.archivePlant")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) waterPlant(w http.ResponseWriter, r *http.Request) {
	plant, err := h.services.PlantService.Water(r.Context(), chi.URLParam(r, "plantID"))
	if err != nil {
		writeError(w, r, err, "*Handler.waterPlant")
		return
	}

	utils.WriteJSON(w, plant, http.StatusOK)
}
