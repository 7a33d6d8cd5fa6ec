// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from upstream HTTP statuses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

var (
	// ErrEmptyCompletion is returned when the language model answers without
	// any choice.
	ErrEmptyCompletion = errors.New("language model returned no choices")

	// ErrRequestFailed wraps transport failures (DNS, timeouts, resets).
	ErrRequestFailed = errors.New("request failed")

	// ErrEmptyUploadURL is returned when the image host accepted an upload
	// but did not report where it lives.
	ErrEmptyUploadURL = errors.New("image host returned no url")

	// ErrInvalidAddress is returned for an unusable server address.
	ErrInvalidAddress = errors.New("invalid address")
)
