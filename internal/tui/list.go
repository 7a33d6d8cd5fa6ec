// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/models"
)

type listModel struct {
	plants  []models.Plant
	idx     int
	offline bool
	loading bool
}

func (m listModel) current() (models.Plant, bool) {
	if len(m.plants) == 0 || m.idx < 0 || m.idx >= len(m.plants) {
		return models.Plant{}, false
	}
	return m.plants[m.idx], true
}

// setPlants replaces the list and keeps the cursor on the same plant when it
// is still present.
func (m *listModel) setPlants(plants []models.Plant) {
	selected, hadSelection := m.current()

	m.plants = plants
	m.idx = 0
	if hadSelection {
		for i, p := range plants {
			if p.ID == selected.ID {
				m.idx = i
				break
			}
		}
	}
}

func (m *listModel) move(delta int) {
	if len(m.plants) == 0 {
		return
	}
	m.idx += delta
	if m.idx < 0 {
		m.idx = 0
	}
	if m.idx >= len(m.plants) {
		m.idx = len(m.plants) - 1
	}
}

// wateringBadge renders the watering status of a plant. Plants without care
// state get no badge.
func wateringBadge(plant models.Plant) string {
	if plant.Care == nil {
		return ""
	}

	w := plant.Care.Watering
	switch w.Status {
	case models.WateringOverdue:
		return badgeOverdueStyle.Render(fmt.Sprintf("[overdue %dd]", w.DaysOverdue))
	case models.WateringSoon:
		if w.DaysUntilNext != nil && *w.DaysUntilNext <= 0 {
			return badgeSoonStyle.Render("[water today]")
		}
		if w.DaysUntilNext != nil {
			return badgeSoonStyle.Render(fmt.Sprintf("[water in %dd]", *w.DaysUntilNext))
		}
		return badgeSoonStyle.Render("[water soon]")
	case models.WateringNever:
		return badgeNeverStyle.Render("[never watered]")
	default:
		return ""
	}
}

func germinatingBadge(plant models.Plant) string {
	if plant.Care == nil || !plant.Care.Germinating {
		return ""
	}
	return badgeGerminatingStyle.Render("[germinating]")
}

func plantBadges(plant models.Plant) string {
	var badges []string
	for _, b := range []string{germinatingBadge(plant), wateringBadge(plant)} {
		if b != "" {
			badges = append(badges, b)
		}
	}
	return strings.Join(badges, " ")
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.plants) == 0:
		b.WriteString("Loading...\n")
	case len(m.plants) == 0:
		b.WriteString("No plants yet. Press a to add one.\n")
	default:
		for i, plant := range m.plants {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			day := 0
			if plant.Care != nil {
				day = plant.Care.DaysSincePlanted
			}
			line := fmt.Sprintf("%s%-28s day %-4d %s", cursor, fitText(plant.Species, 28), day, plantBadges(plant))
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteString("\n")
		}
	}

	if m.offline {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("offline: showing the last saved list"))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
