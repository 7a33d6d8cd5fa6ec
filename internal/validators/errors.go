// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID              = errors.New("invalid id")
	ErrEmptySpecies           = errors.New("species is required")
	ErrSpeciesTooLong         = errors.New("species is too long")
	ErrEmptyPlantedDate       = errors.New("plantedDate is required")
	ErrInvalidGermination     = errors.New("germination days must be positive numbers")
	ErrGerminationRange       = errors.New("maxGermination must not be less than minGermination")
	ErrInvalidWateringFreq    = errors.New("wateringFrequency must be a positive number")
	ErrInvalidPhoto           = errors.New("photo must be an image data URL")
	ErrEmptyContent           = errors.New("content is required")
	ErrContentTooLong         = errors.New("content is too long")
	ErrCaptionTooLong         = errors.New("caption is too long")
	ErrEmptySpeciesInfo       = errors.New("response is required")
	ErrInvalidSpeciesInfoJSON = errors.New("response must be valid JSON")
	ErrEmptyMessage           = errors.New("message is required")
)
