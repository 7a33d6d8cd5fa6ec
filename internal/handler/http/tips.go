// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

// dailyTip answers GET /plants/{id}/tip with today's automatic tip,
// generating it on the first call of the day.
func (h *Handler) dailyTip(w http.ResponseWriter, r *http.Request) {
	tip, err := h.services.TipService.Daily(r.Context(), chi.URLParam(r, "plantID"))
	if err != nil {
		writeError(w, r, err, "*Handler.dailyTip")
		return
	}

	status := http.StatusOK
	if tip.Generated {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, tip, status)
}

func (h *Handler) regenerateTip(w http.ResponseWriter, r *http.Request) {
	tip, err := h.services.TipService.Regenerate(r.Context(), chi.URLParam(r, "plantID"))
	if err != nil {
		writeError(w, r, err, "*Handler.regenerateTip")
		return
	}

	utils.WriteJSON(w, tip, http.StatusCreated)
}
