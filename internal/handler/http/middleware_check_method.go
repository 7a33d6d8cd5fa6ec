// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/app"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

// methodNotAllowed is registered with [chi.Mux.MethodNotAllowed] so a known
// path requested with an unsupported method gets 405 with a JSON body.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}

// notFound answers requests for unknown paths.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
