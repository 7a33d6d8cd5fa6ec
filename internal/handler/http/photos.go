// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func (h *Handler) addPhoto(w http.ResponseWriter, r *http.Request) {
	var in models.PhotoInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "*Handler.addPhoto")
		return
	}

	photo, err := h.services.PlantService.AddPhoto(r.Context(), chi.URLParam(r, "plantID"), in)
	if err != nil {
		writeError(w, r, err, "*Handler.addPhoto")
		return
	}

	utils.WriteJSON(w, photo, http.StatusCreated)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	err := h.services.PlantService.DeletePhoto(r.Context(), chi.URLParam(r, "plantID"), chi.URLParam(r, "photoID"))
	if err != nil {
		writeError(w, r, err, "*Handler.deletePhoto")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
