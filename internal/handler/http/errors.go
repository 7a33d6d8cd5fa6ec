// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoAccessToken is returned by the auth middleware when the request
	// has neither an Authorization header nor a session cookie.
	ErrNoAccessToken = errors.New("no access token in request")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidDateParam is returned for a malformed ?date query value.
	ErrInvalidDateParam = errors.New("date must be formatted as YYYY-MM-DD")
)
