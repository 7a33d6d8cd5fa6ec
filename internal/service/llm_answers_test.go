// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/models"
)

func Test_stripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "  ```\n{\"a\":1}```  ", want: `{"a":1}`},
		{name: "no fence", in: " plain text ", want: "plain text"},
		{name: "fence inside text kept", in: "see ```code``` here", want: "see ```code``` here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func Test_extractJSONObject(t *testing.T) {
	obj, ok := extractJSONObject(`Sure! Here it is: {"species":"Basil"} Enjoy.`)
	require.True(t, ok)
	assert.JSONEq(t, `{"species":"Basil"}`, string(obj))

	_, ok = extractJSONObject("no json at all")
	assert.False(t, ok)

	_, ok = extractJSONObject("{broken")
	assert.False(t, ok)
}

func Test_parseFertilizer(t *testing.T) {
	t.Run("parsed", func(t *testing.T) {
		answer := "```json\n" + `{"recommendations":[{"type":"Nitrogen (N)","percentage":10,"description":"leaves"}],"frequency":"monthly","bestSeason":"Spring"}` + "\n```"

		got := parseFertilizer("Basil", answer)
		require.Equal(t, models.LLMResultParsed, got.Kind)
		require.NotNil(t, got.Recommendation)
		assert.Equal(t, "Basil", got.Recommendation.Species)
		assert.Equal(t, "monthly", got.Recommendation.Frequency)
		assert.Len(t, got.Recommendation.Recommendations, 1)
		assert.Empty(t, got.Raw)
	})

	t.Run("raw", func(t *testing.T) {
		got := parseFertilizer("Basil", "Use compost tea every two weeks.")
		assert.Equal(t, models.LLMResultRaw, got.Kind)
		assert.Nil(t, got.Recommendation)
		assert.Equal(t, "Use compost tea every two weeks.", got.Raw)
	})

	t.Run("object without recommendations is raw", func(t *testing.T) {
		got := parseFertilizer("Basil", `{"note":"ask a gardener"}`)
		assert.Equal(t, models.LLMResultRaw, got.Kind)
	})
}

func Test_parseSpeciesCareInfo(t *testing.T) {
	info, raw := parseSpeciesCareInfo("```json\n{\"scientific_name\":\"Ocimum basilicum\",\"care_tips\":[\"pinch tops\"]}\n```")
	require.NotNil(t, info)
	assert.Empty(t, raw)
	assert.Equal(t, "Ocimum basilicum", info.ScientificName)
	assert.Equal(t, []string{"pinch tops"}, info.CareTips)

	info, raw = parseSpeciesCareInfo("Basil likes sun.")
	assert.Nil(t, info)
	assert.Equal(t, "Basil likes sun.", raw)
}
