// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WateringStatus classifies how urgently a plant needs water.
type WateringStatus string

const (
	// WateringNever means the plant has no recorded watering.
	WateringNever WateringStatus = "never"
	// WateringOverdue means the watering interval has elapsed.
	WateringOverdue WateringStatus = "overdue"
	// WateringSoon means watering is due within two days.
	WateringSoon WateringStatus = "soon"
	// WateringOK means no action is needed.
	WateringOK WateringStatus = "ok"
)

// WateringState is the derived watering classification of a plant.
type WateringState struct {
	Status WateringStatus `json:"status"`

	// DaysSinceWatered is nil when the plant was never watered.
	DaysSinceWatered *int `json:"daysSinceWatered,omitempty"`

	// DaysUntilNext is the signed number of days until the next watering.
	// Nil when the plant was never watered.
	DaysUntilNext *int `json:"daysUntilNext,omitempty"`

	// DaysOverdue is |DaysUntilNext| for overdue plants, zero otherwise.
	DaysOverdue int `json:"daysOverdue"`

	// Alert is true for every status except ok.
	Alert bool `json:"alert"`
}

// CareState is computed at read time and attached to plant responses.
type CareState struct {
	DaysSincePlanted int           `json:"daysSincePlanted"`
	Germinating      bool          `json:"germinating"`
	Watering         WateringState `json:"watering"`
}
