// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/app"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrEmptyToken:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUpstreamFailure:         http.StatusInternalServerError,

	store.ErrPlantNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:        http.StatusNotFound,
	store.ErrPhotoNotFound:       http.StatusNotFound,
	store.ErrSpeciesInfoNotFound: http.StatusNotFound,
	store.ErrInvalidPlant:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the caller. Validation errors
// carry their detail; server side failures are reduced to a generic message.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			return app.MsgTokenIsExpiredOrInvalid
		}
		return app.MsgUnauthorized
	case http.StatusNotFound:
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			return app.MsgNoteNotFound
		case errors.Is(err, store.ErrPhotoNotFound):
			return app.MsgPhotoNotFound
		case errors.Is(err, store.ErrSpeciesInfoNotFound):
			return app.MsgSpeciesInfoNotFound
		default:
			return app.MsgPlantNotFound
		}
	default:
		return app.MsgInternalServerError
	}
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
