// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/migrations"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB together with the classifier used for its driver errors.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded PostgreSQL migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// queryError logs err together with its retry classification and wraps it
// into sentinel.
func (db *DB) queryError(ctx context.Context, funcName string, sentinel, err error) error {
	classification := NonRetryable
	if db.errorClassificator != nil {
		classification = db.errorClassificator.Classify(err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Str("pg_code", postgresError(err)).
		Bool("retryable", classification == Retryable).
		Msg(sentinel.Error())

	return fmt.Errorf("%w: %w", sentinel, err)
}
