// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func TestRenderFertilizer(t *testing.T) {
	parsed := models.FertilizerResult{
		Kind: models.LLMResultParsed,
		Recommendation: &models.FertilizerRecommendation{
			Species:         "Rose",
			Recommendations: []models.FertilizerItem{{Type: "Nitrogen", Percentage: 40, Description: "leaf growth"}},
			Frequency:       "every 2 weeks",
		},
	}
	out := renderFertilizer(parsed)
	assert.Contains(t, out, "Nitrogen (40%)")
	assert.Contains(t, out, "leaf growth")
	assert.Contains(t, out, "every 2 weeks")
	assert.Contains(t, out, "Best season: -")

	fallback := parsed
	fallback.Kind = models.LLMResultFallback
	assert.Contains(t, renderFertilizer(fallback), "general recommendation")

	assert.Equal(t, "plain answer", renderFertilizer(models.FertilizerResult{Kind: models.LLMResultRaw, Raw: " plain answer\n"}))
}

func TestRenderSpeciesInfo(t *testing.T) {
	res := models.SpeciesInfoResult{
		Kind:   models.LLMResultParsed,
		Cached: true,
		Info: &models.SpeciesCareInfo{
			ScientificName: "Ocimum basilicum",
			Light:          "full sun",
			CareTips:       []string{"pinch flowers"},
		},
	}
	out := renderSpeciesInfo(res)
	assert.Contains(t, out, "Ocimum basilicum")
	assert.Contains(t, out, "• pinch flowers")
	assert.Contains(t, out, "species library")

	assert.Equal(t, "text", renderSpeciesInfo(models.SpeciesInfoResult{Kind: models.LLMResultRaw, Raw: "text"}))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: service.ErrNotSignedIn, want: "Session expired, sign in again"},
		{err: service.ErrWrongPassword, want: "Wrong e-mail or password"},
		{err: fmt.Errorf("%w: boom", service.ErrServerUnavailable), want: "No network or the server is unavailable"},
		{err: fmt.Errorf("dial tcp 127.0.0.1:8080: connection refused"), want: "No network or the server is unavailable"},
		{err: fmt.Errorf("plant not found"), want: "plant not found"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "Мят...", fitText("Мята перечная", 6))
}
