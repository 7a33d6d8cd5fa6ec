// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	var in models.NoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "*Handler.addNote")
		return
	}

	note, err := h.services.PlantService.AddNote(r.Context(), chi.URLParam(r, "plantID"), in)
	if err != nil {
		writeError(w, r, err, "*Handler.addNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

// getNotes answers GET /plants/{id}/notes. With ?date=YYYY-MM-DD it returns
// the latest note of that day, or 404 when there is none.
func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	plantID := chi.URLParam(r, "plantID")

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		notes, err := h.services.PlantService.Notes(ctx, plantID)
		if err != nil {
			writeError(w, r, err, "*Handler.getNotes")
			return
		}
		if notes == nil {
			notes = []models.Note{}
		}
		utils.WriteJSON(w, notes, http.StatusOK)
		return
	}

	day, err := models.ParseFlexDate(rawDate)
	if err != nil || !day.Set {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, ErrInvalidDateParam), "*Handler.getNotes")
		return
	}

	note, err := h.services.PlantService.NotesOn(ctx, plantID, day.Time)
	if err != nil {
		writeError(w, r, err, "*Handler.getNotes")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	err := h.services.PlantService.DeleteNote(r.Context(), chi.URLParam(r, "plantID"), chi.URLParam(r, "noteID"))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
