// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	plantFieldSpecies = iota
	plantFieldPlanted
	plantFieldMinGermination
	plantFieldMaxGermination
	plantFieldFrequency
	plantFieldLastWatered
	plantFieldCount
)

var plantFieldLabels = [plantFieldCount]string{
	"Species        ",
	"Planted        ",
	"Min germination",
	"Max germination",
	"Water every    ",
	"Last watered   ",
}

var errSpeciesRequired = errors.New("species is required")

type plantFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newPlantFormModel(today time.Time) plantFormModel {
	inputs := make([]textinput.Model, plantFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
	}
	inputs[plantFieldSpecies].Placeholder = "Basil"
	inputs[plantFieldSpecies].CharLimit = 120
	inputs[plantFieldPlanted].Placeholder = models.DateLayout
	inputs[plantFieldPlanted].SetValue(today.Format(models.DateLayout))
	inputs[plantFieldMinGermination].Placeholder = "days"
	inputs[plantFieldMaxGermination].Placeholder = "days"
	inputs[plantFieldFrequency].Placeholder = fmt.Sprintf("%d (days, optional)", models.DefaultWateringFrequency)
	inputs[plantFieldLastWatered].Placeholder = models.DateLayout + " (optional)"
	inputs[plantFieldSpecies].Focus()

	return plantFormModel{inputs: inputs}
}

func (m plantFormModel) update(msg tea.Msg) (plantFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *plantFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// toInput converts the form into a request body. Empty optional fields stay
// unset so the server applies its defaults.
func (m plantFormModel) toInput() (models.PlantInput, error) {
	var in models.PlantInput

	in.Species = strings.TrimSpace(m.inputs[plantFieldSpecies].Value())
	if in.Species == "" {
		return in, errSpeciesRequired
	}

	var err error
	if in.PlantedDate, err = parseDateField("planted date", m.inputs[plantFieldPlanted].Value(), true); err != nil {
		return in, err
	}
	if in.MinGermination, err = parseIntField("min germination", m.inputs[plantFieldMinGermination].Value(), true); err != nil {
		return in, err
	}
	if in.MaxGermination, err = parseIntField("max germination", m.inputs[plantFieldMaxGermination].Value(), true); err != nil {
		return in, err
	}
	if in.WateringFrequency, err = parseIntField("watering frequency", m.inputs[plantFieldFrequency].Value(), false); err != nil {
		return in, err
	}
	if in.LastWateredDate, err = parseDateField("last watered date", m.inputs[plantFieldLastWatered].Value(), false); err != nil {
		return in, err
	}

	return in, nil
}

func parseIntField(name, raw string, required bool) (models.FlexInt, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return models.FlexInt{}, fmt.Errorf("%s is required", name)
		}
		return models.FlexInt{}, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return models.FlexInt{}, fmt.Errorf("%s must be a whole number", name)
	}
	return models.NewFlexInt(v), nil
}

func parseDateField(name, raw string, required bool) (models.FlexDate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return models.FlexDate{}, fmt.Errorf("%s is required", name)
		}
		return models.FlexDate{}, nil
	}
	d, err := models.ParseFlexDate(raw)
	if err != nil {
		return models.FlexDate{}, fmt.Errorf("%s must look like %s", name, models.DateLayout)
	}
	return d, nil
}

func (m plantFormModel) View() string {
	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(plantFieldLabels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return strings.TrimRight(b.String(), "\n")
}
