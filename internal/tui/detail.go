// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/models"
)

type detailFocus int

const (
	focusNotes detailFocus = iota
	focusPhotos
)

type detailModel struct {
	plant    models.Plant
	focus    detailFocus
	noteIdx  int
	photoIdx int
	tip      *models.Note
}

func newDetailModel(plant models.Plant) detailModel {
	d := detailModel{}
	d.setPlant(plant)
	return d
}

// setPlant orders notes and photos newest first and clamps the cursors.
func (d *detailModel) setPlant(plant models.Plant) {
	sort.SliceStable(plant.Notes, func(i, j int) bool {
		return plant.Notes[i].CreatedAt.After(plant.Notes[j].CreatedAt)
	})
	sort.SliceStable(plant.Photos, func(i, j int) bool {
		return plant.Photos[i].CreatedAt.After(plant.Photos[j].CreatedAt)
	})
	d.plant = plant
	d.noteIdx = clamp(d.noteIdx, len(plant.Notes))
	d.photoIdx = clamp(d.photoIdx, len(plant.Photos))
}

func (d *detailModel) toggleFocus() {
	if d.focus == focusNotes {
		d.focus = focusPhotos
		return
	}
	d.focus = focusNotes
}

func (d *detailModel) move(delta int) {
	if d.focus == focusNotes {
		d.noteIdx = clamp(d.noteIdx+delta, len(d.plant.Notes))
		return
	}
	d.photoIdx = clamp(d.photoIdx+delta, len(d.plant.Photos))
}

func (d detailModel) selectedNote() (models.Note, bool) {
	if d.focus != focusNotes || len(d.plant.Notes) == 0 {
		return models.Note{}, false
	}
	return d.plant.Notes[d.noteIdx], true
}

func (d detailModel) selectedPhoto() (models.Photo, bool) {
	if d.focus != focusPhotos || len(d.plant.Photos) == 0 {
		return models.Photo{}, false
	}
	return d.plant.Photos[d.photoIdx], true
}

// copyText is what the copy action puts on the clipboard: the selected note,
// the photo URL, or the tip when nothing is selected.
func (d detailModel) copyText() string {
	if note, ok := d.selectedNote(); ok {
		return note.Content
	}
	if photo, ok := d.selectedPhoto(); ok {
		return photo.URL
	}
	if d.tip != nil {
		return d.tip.Content
	}
	return ""
}

func (d detailModel) View() string {
	p := d.plant
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Species         │ %s\n", p.Species))
	b.WriteString(fmt.Sprintf("Planted         │ %s\n", formatDate(p.PlantedDate)))
	b.WriteString(fmt.Sprintf("Germination     │ %d-%d days\n", p.MinGermination, p.MaxGermination))
	b.WriteString(fmt.Sprintf("Water every     │ %d days\n", p.WateringFrequency))
	b.WriteString(fmt.Sprintf("Last watered    │ %s\n", formatDatePtr(p.LastWateredDate)))
	if p.Care != nil {
		b.WriteString(fmt.Sprintf("Day             │ %d %s\n", p.Care.DaysSincePlanted, plantBadges(p)))
	}
	if p.Photo != nil {
		b.WriteString(fmt.Sprintf("Cover           │ %s\n", *p.Photo))
	}
	if p.Archived {
		b.WriteString("Status          │ archived\n")
	}

	if d.tip != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Tip of the day"))
		b.WriteString("\n")
		b.WriteString(d.tip.Content)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Notes", len(p.Notes), d.focus == focusNotes))
	b.WriteString("\n")
	for i, note := range p.Notes {
		marker := "  "
		if d.focus == focusNotes && i == d.noteIdx {
			marker = "> "
		}
		prefix := ""
		if note.AutoTip {
			prefix = "[tip] "
		}
		b.WriteString(fmt.Sprintf("%s%s  %s%s\n", marker, formatDate(note.CreatedAt), prefix, fitText(firstLine(note.Content), 60)))
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Photos", len(p.Photos), d.focus == focusPhotos))
	b.WriteString("\n")
	for i, photo := range p.Photos {
		marker := "  "
		if d.focus == focusPhotos && i == d.photoIdx {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", marker, formatDate(photo.CreatedAt), valueOrDash(photo.Caption), fitText(photo.URL, 48)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func sectionTitle(name string, count int, focused bool) string {
	title := fmt.Sprintf("%s (%d)", name, count)
	if focused {
		return titleStyle.Render("» " + title)
	}
	return helpStyle.Render("  " + title)
}

func clamp(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
