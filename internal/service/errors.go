// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnauthorized is returned when no owner identity is attached to the
	// request context.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyToken              = errors.New("empty token")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnknownAuthMode         = errors.New("unknown auth mode")

	// ErrUpstreamFailure wraps language model and image host failures.
	ErrUpstreamFailure = errors.New("upstream service failure")
)

// Client side errors.
var (
	ErrNotSignedIn   = errors.New("not signed in")
	ErrWrongPassword = errors.New("wrong e-mail or password")

	// ErrServerUnavailable is returned when the server could not be reached
	// and no cached copy exists.
	ErrServerUnavailable = errors.New("server unavailable")
)
