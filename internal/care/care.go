// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package care derives watering and germination state from the dates stored
// on a plant. Nothing here is persisted: the state is recomputed on every
// read, so there is no write path that could race.
package care

import (
	"math"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

const (
	day = 24 * time.Hour

	// SoonThreshold is the number of days before due at which watering is
	// reported as soon.
	SoonThreshold = 2
)

// DaysSince returns floor((now - from) / 24h). Negative when from lies in the
// future.
func DaysSince(from, now time.Time) int {
	return int(math.Floor(float64(now.Sub(from)) / float64(day)))
}

// IsGerminating reports whether the plant is still inside its germination
// window, i.e. DaysSince(planted) <= maxGermination.
func IsGerminating(plant models.Plant, now time.Time) bool {
	return DaysSince(plant.PlantedDate, now) <= plant.MaxGermination
}

// Frequency returns the effective watering interval of the plant.
func Frequency(plant models.Plant) int {
	if plant.WateringFrequency <= 0 {
		return models.DefaultWateringFrequency
	}
	return plant.WateringFrequency
}

// Watering classifies the plant's watering due-state.
//
//	never watered              -> never   (alert)
//	daysUntilNext <= 0         -> overdue (alert, daysOverdue = |daysUntilNext|)
//	0 < daysUntilNext <= 2     -> soon    (alert)
//	otherwise                  -> ok
func Watering(plant models.Plant, now time.Time) models.WateringState {
	if plant.LastWateredDate == nil {
		return models.WateringState{Status: models.WateringNever, Alert: true}
	}

	since := DaysSince(*plant.LastWateredDate, now)
	until := Frequency(plant) - since
	state := models.WateringState{
		DaysSinceWatered: &since,
		DaysUntilNext:    &until,
	}

	switch {
	case until <= 0:
		state.Status = models.WateringOverdue
		state.DaysOverdue = -until
		state.Alert = true
	case until <= SoonThreshold:
		state.Status = models.WateringSoon
		state.Alert = true
	default:
		state.Status = models.WateringOK
	}

	return state
}

// State aggregates the derived care state of a plant.
func State(plant models.Plant, now time.Time) models.CareState {
	return models.CareState{
		DaysSincePlanted: DaysSince(plant.PlantedDate, now),
		Germinating:      IsGerminating(plant, now),
		Watering:         Watering(plant, now),
	}
}

// Attach sets the derived care state on every plant in place.
func Attach(plants []models.Plant, now time.Time) {
	for i := range plants {
		state := State(plants[i], now)
		plants[i].Care = &state
	}
}

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return Day(a, loc).Equal(Day(b, loc))
}
