// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// speciesInfoRepository is the PostgreSQL implementation of
// [SpeciesInfoRepository] over the all_plants table.
type speciesInfoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSpeciesInfoRepository constructs a [SpeciesInfoRepository] backed by db.
func NewSpeciesInfoRepository(db *DB, logger *logger.Logger) SpeciesInfoRepository {
	logger.Debug().Msg("creating species info repository")
	return &speciesInfoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *speciesInfoRepository) FindBySpecies(ctx context.Context, ownerID, species string) (models.SpeciesInfo, error) {
	query, args, err := buildFindSpeciesInfoQuery(ownerID, species)
	if err != nil {
		return models.SpeciesInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	info, err := scanSpeciesInfo(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpeciesInfo{}, ErrSpeciesInfoNotFound
	}
	if err != nil {
		return models.SpeciesInfo{}, r.db.queryError(ctx, "*speciesInfoRepository.FindBySpecies", ErrScanningRow, err)
	}

	return info, nil
}

func (r *speciesInfoRepository) CreateSpeciesInfo(ctx context.Context, info models.SpeciesInfo) (bool, error) {
	query, args, err := buildCreateSpeciesInfoQuery(info)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, r.db.queryError(ctx, "*speciesInfoRepository.CreateSpeciesInfo", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, r.db.queryError(ctx, "*speciesInfoRepository.CreateSpeciesInfo", ErrExecutingStatement, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*speciesInfoRepository.CreateSpeciesInfo").
		Str("species", info.Species).
		Bool("created", affected > 0).
		Msg("species info saved")

	return affected > 0, nil
}

func (r *speciesInfoRepository) ReplaceSpeciesInfo(ctx context.Context, info models.SpeciesInfo) (models.SpeciesInfo, error) {
	query, args, err := buildReplaceSpeciesInfoQuery(info)
	if err != nil {
		return models.SpeciesInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := scanSpeciesInfo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.SpeciesInfo{}, r.db.queryError(ctx, "*speciesInfoRepository.ReplaceSpeciesInfo", ErrExecutingStatement, err)
	}

	return stored, nil
}

func (r *speciesInfoRepository) DeleteSpeciesInfo(ctx context.Context, ownerID, id string) error {
	query, args, err := buildDeleteSpeciesInfoQuery(ownerID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.queryError(ctx, "*speciesInfoRepository.DeleteSpeciesInfo", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.queryError(ctx, "*speciesInfoRepository.DeleteSpeciesInfo", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSpeciesInfoNotFound
	}

	return nil
}

func scanSpeciesInfo(row rowScanner) (models.SpeciesInfo, error) {
	var (
		info    models.SpeciesInfo
		payload []byte
	)
	if err := row.Scan(&info.ID, &info.OwnerID, &info.Species, &payload, &info.CreatedAt, &info.UpdatedAt); err != nil {
		return models.SpeciesInfo{}, err
	}
	info.Info = json.RawMessage(payload)
	return info, nil
}
