// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/app"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, strings.TrimPrefix(msg, app.MsgInvalidDataProvided+": "))

	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrNotSignedIn, msg)

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgNoteNotFound:
			return store.ErrNoteNotFound
		case app.MsgPhotoNotFound:
			return store.ErrPhotoNotFound
		case app.MsgSpeciesInfoNotFound:
			return store.ErrSpeciesInfoNotFound
		default:
			return store.ErrPlantNotFound
		}

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)

	case errors.Is(err, adapter.ErrRequestFailed):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "not found: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
