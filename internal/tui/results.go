// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/models"
)

// resultView shows a generated answer that is not stored on the plant.
type resultView struct {
	title string
	body  string
}

func renderFertilizer(res models.FertilizerResult) string {
	if res.Recommendation == nil {
		return strings.TrimSpace(res.Raw)
	}

	rec := res.Recommendation
	var b strings.Builder
	if res.Kind == models.LLMResultFallback {
		b.WriteString("The assistant is unavailable, showing a general recommendation.\n\n")
	}
	for _, item := range rec.Recommendations {
		b.WriteString(fmt.Sprintf("• %s (%.0f%%)\n", item.Type, item.Percentage))
		if item.Description != "" {
			b.WriteString("  ")
			b.WriteString(item.Description)
			b.WriteString("\n")
		}
	}
	b.WriteString("\nFrequency:   ")
	b.WriteString(valueOrDash(rec.Frequency))
	b.WriteString("\nBest season: ")
	b.WriteString(valueOrDash(rec.BestSeason))
	return b.String()
}

func renderSpeciesInfo(res models.SpeciesInfoResult) string {
	if res.Info == nil {
		return strings.TrimSpace(res.Raw)
	}

	info := res.Info
	var b strings.Builder
	rows := []struct{ label, value string }{
		{"Scientific name", info.ScientificName},
		{"Light", info.Light},
		{"Water", info.Water},
		{"Soil", info.Soil},
		{"Temperature", info.IdealTemperature},
		{"Seed awakening", info.SeedAwakening},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-15s │ %s\n", row.label, valueOrDash(row.value)))
	}
	if len(info.CareTips) > 0 {
		b.WriteString("\nCare tips\n")
		for _, tip := range info.CareTips {
			b.WriteString("• ")
			b.WriteString(tip)
			b.WriteString("\n")
		}
	}
	if res.Cached {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("from the species library"))
	}
	return strings.TrimRight(b.String(), "\n")
}
