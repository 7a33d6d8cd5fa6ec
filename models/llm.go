// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// LLMResultKind tells how a language model answer was interpreted.
type LLMResultKind string

const (
	// LLMResultParsed means the answer matched the requested JSON shape.
	LLMResultParsed LLMResultKind = "parsed"
	// LLMResultRaw means the answer is kept as plain text.
	LLMResultRaw LLMResultKind = "raw"
	// LLMResultFallback means the model failed and built-in defaults are used.
	LLMResultFallback LLMResultKind = "fallback"
)

// FertilizerItem is one nutrient line of a recommendation.
type FertilizerItem struct {
	Type        string  `json:"type"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

// FertilizerRecommendation is the structured fertilizer answer.
type FertilizerRecommendation struct {
	Species         string           `json:"species"`
	Recommendations []FertilizerItem `json:"recommendations"`
	Frequency       string           `json:"frequency"`
	BestSeason      string           `json:"bestSeason"`
}

// FertilizerResult is either a parsed recommendation or the raw model text.
// Exactly one of Recommendation and Raw is set.
type FertilizerResult struct {
	Kind           LLMResultKind             `json:"kind"`
	Recommendation *FertilizerRecommendation `json:"recommendation,omitempty"`
	Raw            string                    `json:"raw,omitempty"`
}

// FertilizerRequest is the body of POST /generate-fertilizer.
type FertilizerRequest struct {
	Species string `json:"species"`
}

// SpeciesInfoResult is the outcome of a cache-first species info lookup.
type SpeciesInfoResult struct {
	Kind   LLMResultKind    `json:"kind"`
	Info   *SpeciesCareInfo `json:"info,omitempty"`
	Raw    string           `json:"raw,omitempty"`
	Cached bool             `json:"cached"`
	Entry  SpeciesInfo      `json:"entry"`
}

// Payload returns the value stored in the species info cache for r.
func (r SpeciesInfoResult) Payload() (json.RawMessage, error) {
	if r.Info != nil {
		return json.Marshal(r.Info)
	}
	return json.Marshal(r.Raw)
}

// ChatRequest is the body of the free-form chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the model answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// TipResponse is returned by the daily tip endpoints.
type TipResponse struct {
	Note Note `json:"note"`

	// Generated is false when an already stored tip was returned.
	Generated bool `json:"generated"`
}
