// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// Field names accepted by [PlantValidator.Validate] to restrict validation.
const (
	FieldSpecies           = "species"
	FieldPlantedDate       = "plantedDate"
	FieldGermination       = "germination"
	FieldWateringFrequency = "wateringFrequency"
	FieldPhoto             = "photo"
	FieldContent           = "content"
	FieldCaption           = "caption"
	FieldResponse          = "response"
	FieldMessage           = "message"
)

const (
	maxSpeciesLength = 200
	maxContentLength = 10000
	maxCaptionLength = 500
	maxMessageLength = 10000

	// maxDays fits the INTEGER columns plants are stored in.
	maxDays = math.MaxInt32
)

// PlantValidator validates request bodies of the plant endpoints.
//
// Supported types, as values or pointers: [models.PlantInput],
// [models.NoteInput], [models.PhotoInput], [models.SpeciesInfoRequest],
// [models.FertilizerRequest] and [models.ChatRequest].
type PlantValidator struct{}

// NewPlantValidator returns a [PlantValidator] as a [Validator].
func NewPlantValidator() Validator {
	return &PlantValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; by default every field is checked.
func (v *PlantValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlantInput:
		return v.validatePlantInput(value, fields...)
	case *models.PlantInput:
		return v.validatePlantInput(*value, fields...)

	case models.NoteInput:
		return v.validateNoteInput(value, fields...)
	case *models.NoteInput:
		return v.validateNoteInput(*value, fields...)

	case models.PhotoInput:
		return v.validatePhotoInput(value, fields...)
	case *models.PhotoInput:
		return v.validatePhotoInput(*value, fields...)

	case models.SpeciesInfoRequest:
		return v.validateSpeciesInfoRequest(value, fields...)
	case *models.SpeciesInfoRequest:
		return v.validateSpeciesInfoRequest(*value, fields...)

	case models.FertilizerRequest:
		return validateSpecies(value.Species)
	case *models.FertilizerRequest:
		return validateSpecies(value.Species)

	case models.ChatRequest:
		return validateMessage(value.Message)
	case *models.ChatRequest:
		return validateMessage(value.Message)

	default:
		return ErrUnsupportedType
	}
}

// ValidateIDs reports [ErrInvalidID] unless every id is a UUID.
func ValidateIDs(ids ...string) error {
	for _, id := range ids {
		if !utils.IsUUID(id) {
			return ErrInvalidID
		}
	}
	return nil
}

func (v *PlantValidator) validatePlantInput(in models.PlantInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpecies, FieldPlantedDate, FieldGermination, FieldWateringFrequency, FieldPhoto}
	}

	for _, f := range fields {
		switch f {
		case FieldSpecies:
			if err := validateSpecies(in.Species); err != nil {
				return err
			}
		case FieldPlantedDate:
			if !in.PlantedDate.Set {
				return ErrEmptyPlantedDate
			}
		case FieldGermination:
			if !in.MinGermination.Set || !in.MaxGermination.Set ||
				in.MinGermination.Value <= 0 || in.MaxGermination.Value <= 0 ||
				in.MaxGermination.Value > maxDays {
				return ErrInvalidGermination
			}
			if in.MaxGermination.Value < in.MinGermination.Value {
				return ErrGerminationRange
			}
		case FieldWateringFrequency:
			if in.WateringFrequency.Set && (in.WateringFrequency.Value <= 0 || in.WateringFrequency.Value > maxDays) {
				return ErrInvalidWateringFreq
			}
		case FieldPhoto:
			if in.Photo != "" && !isImageDataURL(in.Photo) {
				return ErrInvalidPhoto
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlantValidator) validateNoteInput(in models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(in.Content) == "" {
				return ErrEmptyContent
			}
			if utf8.RuneCountInString(in.Content) > maxContentLength {
				return ErrContentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlantValidator) validatePhotoInput(in models.PhotoInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhoto, FieldCaption}
	}

	for _, f := range fields {
		switch f {
		case FieldPhoto:
			if !isImageDataURL(in.Photo) {
				return ErrInvalidPhoto
			}
		case FieldCaption:
			if utf8.RuneCountInString(in.Caption) > maxCaptionLength {
				return ErrCaptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlantValidator) validateSpeciesInfoRequest(in models.SpeciesInfoRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpecies, FieldResponse}
	}

	for _, f := range fields {
		switch f {
		case FieldSpecies:
			if err := validateSpecies(in.Specie); err != nil {
				return err
			}
		case FieldResponse:
			trimmed := strings.TrimSpace(string(in.Response))
			if trimmed == "" || trimmed == "null" {
				return ErrEmptySpeciesInfo
			}
			if !json.Valid(in.Response) {
				return ErrInvalidSpeciesInfoJSON
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSpecies(species string) error {
	species = strings.TrimSpace(species)
	if species == "" {
		return ErrEmptySpecies
	}
	if utf8.RuneCountInString(species) > maxSpeciesLength {
		return ErrSpeciesTooLong
	}
	return nil
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return ErrContentTooLong
	}
	return nil
}

func isImageDataURL(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}
