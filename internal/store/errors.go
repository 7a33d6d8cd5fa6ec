// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Match them with
// [errors.Is].
var (
	// ErrPlantNotFound is returned when the plant does not exist or belongs
	// to another owner.
	ErrPlantNotFound = errors.New("plant was not found")

	// ErrNoteNotFound is returned when a note lookup or delete matches nothing.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrPhotoNotFound is returned when a photo delete matches nothing.
	ErrPhotoNotFound = errors.New("photo was not found")

	// ErrSpeciesInfoNotFound is returned when no cached species info exists.
	ErrSpeciesInfoNotFound = errors.New("species info was not found")

	// ErrTipAlreadyExists is returned when an automatic tip for the same plant
	// and day was stored concurrently.
	ErrTipAlreadyExists = errors.New("tip for this day already exists")

	// ErrInvalidPlant is returned when the database rejects plant values,
	// e.g. a germination window with max below min.
	ErrInvalidPlant = errors.New("invalid plant values")

	// ErrLocalSessionNotFound is returned by the client cache when no
	// session token was stored.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
