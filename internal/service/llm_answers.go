// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/models"
)

var (
	leadingFence  = regexp.MustCompile("^\\s*```[A-Za-z]*\\s*")
	trailingFence = regexp.MustCompile("\\s*```\\s*$")
)

func tipPrompt(species string, daysSincePlanted int) string {
	return fmt.Sprintf(
		"Tip of the day for caring for %s, %d days after sowing. Only one short, practical tip.",
		species, daysSincePlanted,
	)
}

func fertilizerPrompt(species string) string {
	return fmt.Sprintf(
		"Generate fertilizer recommendations for the plant %s in JSON format with the following fields: "+
			"species, recommendations (array of objects with type, percentage and description), frequency and bestSeason. "+
			"Reply with valid JSON only.",
		species,
	)
}

func speciesInfoPrompt(species string) string {
	return `You are a botany expert. Return ONLY valid JSON, without any additional text or explanations.

Provide detailed information about: ` + species + `

Required JSON format (reply ONLY with this JSON):
{
  "scientific_name": "string",
  "light": "string",
  "water": "string",
  "soil": "string",
  "ideal_temperature": "string",
  "care_tips": ["string"],
  "seed_awakening": "string"
}

No text before or after the JSON.`
}

// defaultFertilizer is served when the language model is unavailable.
func defaultFertilizer(species string) models.FertilizerRecommendation {
	return models.FertilizerRecommendation{
		Species: species,
		Recommendations: []models.FertilizerItem{
			{Type: "Nitrogen (N)", Percentage: 20, Description: "Promotes leaf growth"},
			{Type: "Phosphorus (P)", Percentage: 15, Description: "Strengthens roots and flowers"},
			{Type: "Potassium (K)", Percentage: 15, Description: "Improves overall plant health"},
		},
		Frequency:  "Every 2-4 weeks",
		BestSeason: "Spring and Summer",
	}
}

// stripCodeFences removes a leading ```lang and a trailing ``` fence.
func stripCodeFences(s string) string {
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractJSONObject returns s when it is valid JSON, otherwise the outermost
// {...} span of s if that one is.
func extractJSONObject(s string) ([]byte, bool) {
	if json.Valid([]byte(s)) {
		return []byte(s), true
	}

	start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return nil, false
	}

	candidate := []byte(s[start : end+1])
	return candidate, json.Valid(candidate)
}

func parseFertilizer(species, answer string) models.FertilizerResult {
	cleaned := stripCodeFences(answer)

	if obj, ok := extractJSONObject(cleaned); ok {
		var rec models.FertilizerRecommendation
		if err := json.Unmarshal(obj, &rec); err == nil && len(rec.Recommendations) > 0 {
			if rec.Species == "" {
				rec.Species = species
			}
			return models.FertilizerResult{Kind: models.LLMResultParsed, Recommendation: &rec}
		}
	}

	return models.FertilizerResult{Kind: models.LLMResultRaw, Raw: cleaned}
}

func parseSpeciesCareInfo(answer string) (*models.SpeciesCareInfo, string) {
	cleaned := stripCodeFences(answer)

	if obj, ok := extractJSONObject(cleaned); ok {
		var info models.SpeciesCareInfo
		if err := json.Unmarshal(obj, &info); err == nil && !isEmptyCareInfo(info) {
			return &info, ""
		}
	}

	return nil, cleaned
}

func isEmptyCareInfo(info models.SpeciesCareInfo) bool {
	return info.ScientificName == "" && info.Light == "" && info.Water == "" &&
		info.Soil == "" && info.IdealTemperature == "" && info.SeedAwakening == "" &&
		len(info.CareTips) == 0
}
