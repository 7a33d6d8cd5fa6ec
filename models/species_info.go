// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SpeciesInfo is a cached description of a species, stored per owner so the
// language model is not asked twice about the same species.
type SpeciesInfo struct {
	ID      string `json:"id"`
	OwnerID string `json:"userId"`
	Species string `json:"species"`

	// Info is an opaque payload: either a parsed [SpeciesCareInfo] object or
	// the raw model text encoded as a JSON string.
	Info json.RawMessage `json:"info"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the name of the database table backing [SpeciesInfo].
func (s SpeciesInfo) TableName() string {
	return "all_plants"
}

// SpeciesCareInfo is the structured botanist answer requested from the
// language model.
type SpeciesCareInfo struct {
	ScientificName   string   `json:"scientific_name"`
	Light            string   `json:"light"`
	Water            string   `json:"water"`
	Soil             string   `json:"soil"`
	IdealTemperature string   `json:"ideal_temperature"`
	CareTips         []string `json:"care_tips"`
	SeedAwakening    string   `json:"seed_awakening"`
}

// SpeciesInfoRequest is the body of species info writes. Specie is the
// species name, Response is the payload to store.
type SpeciesInfoRequest struct {
	Specie   string          `json:"specie"`
	Response json.RawMessage `json:"response"`
}

// SpeciesInfoSaveResponse reports the outcome of a species info write.
type SpeciesInfoSaveResponse struct {
	Success bool   `json:"success"`
	Created bool   `json:"created"`
	ID      string `json:"id"`
}
