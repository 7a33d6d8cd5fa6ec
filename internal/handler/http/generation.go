// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func (h *Handler) generateFertilizer(w http.ResponseWriter, r *http.Request) {
	var req models.FertilizerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateFertilizer")
		return
	}

	result, err := h.services.FertilizerService.Recommend(r.Context(), req.Species)
	if err != nil {
		writeError(w, r, err, "*Handler.generateFertilizer")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// chat answers POST /deepseek and its alias POST /chat.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}

	resp, err := h.services.ChatService.Ask(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
