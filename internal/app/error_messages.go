// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the plant
// keeper server handlers and by the terminal client when it interprets
// server errors.
//
// All Msg* constants are human-readable message strings written into the
// {"error": "..."} body of failed API calls. Keeping them in one place keeps
// the wording consistent on both sides of the wire.
package app

const (
	// MsgInvalidDataProvided prefixes every validation failure (400).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnauthorized is returned when no owner identity could be resolved
	// from the session cookie or bearer token.
	MsgUnauthorized = "unauthorized"

	// MsgTokenIsExpiredOrInvalid is returned when the auth provider or the
	// local verifier rejects the token.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgPlantNotFound       = "plant not found"
	MsgNoteNotFound        = "note not found"
	MsgPhotoNotFound       = "photo not found"
	MsgSpeciesInfoNotFound = "species info not found"

	// MsgMethodNotAllowed is returned for a known path with an unsupported
	// method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError hides database and language model failures from
	// the client; details are only logged.
	MsgInternalServerError = "internal server error"
)
