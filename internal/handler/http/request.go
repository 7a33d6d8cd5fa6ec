// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/service"
)

// maxBodyBytes bounds request bodies; photos travel as base64 data URLs.
const maxBodyBytes = 16 << 20

// decodeJSON reads the request body into v. Decoding failures are reported
// as invalid data so they map to 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON)
	}
	return nil
}
