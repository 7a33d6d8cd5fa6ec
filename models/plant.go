// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultWateringFrequency is the watering interval in days applied when a
// plant is created without one.
const DefaultWateringFrequency = 7

// Plant is a single tracked plant owned by exactly one user.
//
// Notes and Photos are child collections stored in their own tables and
// loaded together with the plant on detail reads. Care is never persisted:
// it is derived from the stored dates on every read.
type Plant struct {
	// ID is the opaque unique identifier of the plant.
	ID string `json:"id"`

	// OwnerID is the identity of the user the plant belongs to.
	OwnerID string `json:"userId"`

	// Species is a free-text species name. It doubles as the lookup key into
	// the species info cache.
	Species string `json:"species"`

	// PlantedDate is the day the seed was sown.
	PlantedDate time.Time `json:"plantedDate"`

	// LastWateredDate is nil when the plant was never watered.
	LastWateredDate *time.Time `json:"lastWateredDate"`

	// MinGermination and MaxGermination bound the germination window in days.
	MinGermination int `json:"minGermination"`
	MaxGermination int `json:"maxGermination"`

	// WateringFrequency is the watering interval in days.
	WateringFrequency int `json:"wateringFrequency"`

	// Photo is the optional cover image URL.
	Photo *string `json:"photo"`

	Notes  []Note  `json:"notes"`
	Photos []Photo `json:"photos"`

	// Archived marks a soft-deleted plant.
	Archived bool `json:"archived"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// Care is the derived watering and germination state.
	Care *CareState `json:"care,omitempty"`
}

// TableName returns the name of the database table backing [Plant].
func (p Plant) TableName() string {
	return "plants"
}

// Note is a free-text entry attached to a plant. Generated care tips are
// stored as notes too.
type Note struct {
	ID        string    `json:"id"`
	PlantID   string    `json:"plantId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// AutoTip is true for tips produced by the automatic daily path.
	AutoTip bool `json:"autoTip,omitempty"`

	// TipDay is the calendar day an automatic tip belongs to. It is unique per
	// plant and nil for every other note.
	TipDay *time.Time `json:"-"`
}

// TableName returns the name of the database table backing [Note].
func (n Note) TableName() string {
	return "plant_notes"
}

// Photo is one entry of a plant's photo timeline.
type Photo struct {
	ID        string    `json:"id"`
	PlantID   string    `json:"plantId"`
	URL       string    `json:"photo"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table backing [Photo].
func (p Photo) TableName() string {
	return "plant_photos"
}

// ArchivedFilter selects plants by their archived flag in list queries.
type ArchivedFilter string

const (
	// ArchivedAny lists every plant regardless of the flag.
	ArchivedAny ArchivedFilter = ""
	// ArchivedExclude lists active plants only.
	ArchivedExclude ArchivedFilter = "false"
	// ArchivedOnly lists archived plants only.
	ArchivedOnly ArchivedFilter = "true"
)

// Valid reports whether f is one of the known filter values.
func (f ArchivedFilter) Valid() bool {
	switch f {
	case ArchivedAny, ArchivedExclude, ArchivedOnly:
		return true
	}
	return false
}

// PlantFilter narrows a plant list query.
type PlantFilter struct {
	Archived ArchivedFilter
}
