// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// getSpeciesInfo answers GET /plants/info?specie=<name>.
func (h *Handler) getSpeciesInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.SpeciesInfoService.Get(r.Context(), r.URL.Query().Get("specie"))
	if err != nil {
		writeError(w, r, err, "*Handler.getSpeciesInfo")
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// saveSpeciesInfo answers POST /plants/info. An existing entry is kept and
// reported with created=false and status 200.
func (h *Handler) saveSpeciesInfo(w http.ResponseWriter, r *http.Request) {
	var req models.SpeciesInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.saveSpeciesInfo")
		return
	}

	resp, err := h.services.SpeciesInfoService.Save(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.saveSpeciesInfo")
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, resp, status)
}

func (h *Handler) replaceSpeciesInfo(w http.ResponseWriter, r *http.Request) {
	var req models.SpeciesInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.replaceSpeciesInfo")
		return
	}

	info, err := h.services.SpeciesInfoService.Replace(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.replaceSpeciesInfo")
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// deleteSpeciesInfo answers DELETE /plants/info?id=<id>.
func (h *Handler) deleteSpeciesInfo(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SpeciesInfoService.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeError(w, r, err, "*Handler.deleteSpeciesInfo")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// generateSpeciesInfo answers POST /plants/info/generate with the cached
// entry or a freshly generated one.
func (h *Handler) generateSpeciesInfo(w http.ResponseWriter, r *http.Request) {
	var req models.SpeciesInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateSpeciesInfo")
		return
	}

	result, err := h.services.SpeciesInfoService.Generate(r.Context(), req.Specie)
	if err != nil {
		writeError(w, r, err, "*Handler.generateSpeciesInfo")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
