// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/models"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := now.Add(-time.Duration(n) * day)
	return &t
}

func TestDaysSince(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want int
	}{
		{name: "same instant", from: now, want: 0},
		{name: "23 hours", from: now.Add(-23 * time.Hour), want: 0},
		{name: "exactly one day", from: now.Add(-day), want: 1},
		{name: "ten and a half days", from: now.Add(-10*day - 12*time.Hour), want: 10},
		{name: "future", from: now.Add(time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysSince(tt.from, now))
		})
	}
}

func TestIsGerminating(t *testing.T) {
	plant := models.Plant{PlantedDate: *daysAgo(10), MaxGermination: 14}
	assert.True(t, IsGerminating(plant, now))

	plant.MaxGermination = 5
	assert.False(t, IsGerminating(plant, now))

	plant.MaxGermination = 10
	assert.True(t, IsGerminating(plant, now), "boundary is inclusive")
}

func TestIsGerminating_MatchesDaysSince(t *testing.T) {
	for planted := 0; planted <= 30; planted++ {
		for maxGerm := 1; maxGerm <= 30; maxGerm++ {
			plant := models.Plant{PlantedDate: *daysAgo(planted), MaxGermination: maxGerm}
			assert.Equal(t, DaysSince(plant.PlantedDate, now) <= maxGerm, IsGerminating(plant, now))
		}
	}
}

func TestWatering(t *testing.T) {
	tests := []struct {
		name        string
		lastWatered *time.Time
		frequency   int
		wantStatus  models.WateringStatus
		wantOverdue int
		wantAlert   bool
	}{
		{name: "never watered", lastWatered: nil, frequency: 7, wantStatus: models.WateringNever, wantAlert: true},
		{name: "overdue by one", lastWatered: daysAgo(8), frequency: 7, wantStatus: models.WateringOverdue, wantOverdue: 1, wantAlert: true},
		{name: "due today", lastWatered: daysAgo(7), frequency: 7, wantStatus: models.WateringOverdue, wantOverdue: 0, wantAlert: true},
		{name: "due tomorrow", lastWatered: daysAgo(6), frequency: 7, wantStatus: models.WateringSoon, wantAlert: true},
		{name: "due in two days", lastWatered: daysAgo(5), frequency: 7, wantStatus: models.WateringSoon, wantAlert: true},
		{name: "due in three days", lastWatered: daysAgo(4), frequency: 7, wantStatus: models.WateringOK},
		{name: "just watered", lastWatered: daysAgo(0), frequency: 7, wantStatus: models.WateringOK},
		{name: "zero frequency uses default", lastWatered: daysAgo(8), frequency: 0, wantStatus: models.WateringOverdue, wantOverdue: 1, wantAlert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plant := models.Plant{LastWateredDate: tt.lastWatered, WateringFrequency: tt.frequency}
			got := Watering(plant, now)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantOverdue, got.DaysOverdue)
			assert.Equal(t, tt.wantAlert, got.Alert)
		})
	}
}

func TestWatering_OverdueIffElapsedReachesFrequency(t *testing.T) {
	for since := 0; since <= 20; since++ {
		for freq := 1; freq <= 10; freq++ {
			plant := models.Plant{LastWateredDate: daysAgo(since), WateringFrequency: freq}
			got := Watering(plant, now)
			assert.Equal(t, since >= freq, got.Status == models.WateringOverdue, "since=%d freq=%d", since, freq)
		}
	}
}

func TestState(t *testing.T) {
	plant := models.Plant{
		PlantedDate:       *daysAgo(10),
		LastWateredDate:   daysAgo(8),
		MaxGermination:    14,
		WateringFrequency: 7,
	}

	state := State(plant, now)
	assert.Equal(t, 10, state.DaysSincePlanted)
	assert.True(t, state.Germinating)
	assert.Equal(t, models.WateringOverdue, state.Watering.Status)
	require.NotNil(t, state.Watering.DaysUntilNext)
	assert.Equal(t, -1, *state.Watering.DaysUntilNext)
}

func TestAttach(t *testing.T) {
	plants := []models.Plant{{PlantedDate: *daysAgo(1)}, {PlantedDate: *daysAgo(2)}}
	Attach(plants, now)

	for _, p := range plants {
		require.NotNil(t, p.Care)
	}
	assert.Equal(t, 2, plants[1].Care.DaysSincePlanted)
}

func TestSameDay(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	a := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b, time.UTC))
	// 01:00 UTC is still Dec 31 in UTC-3
	assert.False(t, SameDay(a, b, saoPaulo))
	assert.True(t, SameDay(a, b, nil))
}

func TestDay(t *testing.T) {
	ts := time.Date(2024, 1, 1, 15, 4, 5, 6, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Day(ts, time.UTC))
}
