// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type speciesInfoService struct {
	speciesInfoRepository store.SpeciesInfoRepository
	llm                   adapter.LLMClient
	validator             validators.Validator
	idGenerator           *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewSpeciesInfoService(speciesInfoRepository store.SpeciesInfoRepository, llm adapter.LLMClient, logger *logger.Logger) SpeciesInfoService {
	return &speciesInfoService{
		speciesInfoRepository: speciesInfoRepository,
		llm:                   llm,
		validator:             validators.NewPlantValidator(),
		idGenerator:           utils.NewUUIDGenerator(),
		now:                   time.Now,
		logger:                logger,
	}
}

// Save leaves an existing entry untouched and reports Created=false with the
// id of the stored entry.
func (s *speciesInfoService) Save(ctx context.Context, req models.SpeciesInfoRequest) (models.SpeciesInfoSaveResponse, error) {
	info, err := s.newEntry(ctx, req)
	if err != nil {
		return models.SpeciesInfoSaveResponse{}, err
	}

	created, err := s.speciesInfoRepository.CreateSpeciesInfo(ctx, info)
	if err != nil {
		return models.SpeciesInfoSaveResponse{}, err
	}
	if created {
		return models.SpeciesInfoSaveResponse{Success: true, Created: true, ID: info.ID}, nil
	}

	existing, err := s.speciesInfoRepository.FindBySpecies(ctx, info.OwnerID, info.Species)
	if err != nil {
		return models.SpeciesInfoSaveResponse{}, err
	}
	return models.SpeciesInfoSaveResponse{Success: true, ID: existing.ID}, nil
}

func (s *speciesInfoService) Replace(ctx context.Context, req models.SpeciesInfoRequest) (models.SpeciesInfo, error) {
	info, err := s.newEntry(ctx, req)
	if err != nil {
		return models.SpeciesInfo{}, err
	}

	return s.speciesInfoRepository.ReplaceSpeciesInfo(ctx, info)
}

// Get matches the species name exactly, after trimming surrounding spaces.
func (s *speciesInfoService) Get(ctx context.Context, species string) (models.SpeciesInfo, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.SpeciesInfo{}, err
	}

	species = strings.TrimSpace(species)
	if err = s.validator.Validate(ctx, models.SpeciesInfoRequest{Specie: species}, validators.FieldSpecies); err != nil {
		return models.SpeciesInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.speciesInfoRepository.FindBySpecies(ctx, ownerID, species)
}

func (s *speciesInfoService) Delete(ctx context.Context, id string) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidDataProvided)
	}
	if err = validators.ValidateIDs(id); err != nil {
		return store.ErrSpeciesInfoNotFound
	}

	return s.speciesInfoRepository.DeleteSpeciesInfo(ctx, ownerID, id)
}

func (s *speciesInfoService) Generate(ctx context.Context, species string) (models.SpeciesInfoResult, error) {
	log := logger.FromContext(ctx)

	cached, err := s.Get(ctx, species)
	if err == nil {
		return resultFromEntry(cached), nil
	}
	if !errors.Is(err, store.ErrSpeciesInfoNotFound) {
		return models.SpeciesInfoResult{}, err
	}

	species = strings.TrimSpace(species)
	answer, err := s.llm.Complete(ctx, speciesInfoPrompt(species))
	if err != nil {
		log.Err(err).Str("func", "*speciesInfoService.Generate").Str("species", species).Msg("species info generation failed")
		return models.SpeciesInfoResult{}, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	result := models.SpeciesInfoResult{Kind: models.LLMResultRaw}
	result.Info, result.Raw = parseSpeciesCareInfo(answer)
	if result.Info != nil {
		result.Kind = models.LLMResultParsed
	}

	payload, err := result.Payload()
	if err != nil {
		return models.SpeciesInfoResult{}, fmt.Errorf("error encoding species info: %w", err)
	}

	entry, err := s.newEntry(ctx, models.SpeciesInfoRequest{Specie: species, Response: payload})
	if err != nil {
		return models.SpeciesInfoResult{}, err
	}

	created, err := s.speciesInfoRepository.CreateSpeciesInfo(ctx, entry)
	if err != nil {
		return models.SpeciesInfoResult{}, err
	}
	if !created {
		// another request cached the species first
		existing, err := s.speciesInfoRepository.FindBySpecies(ctx, entry.OwnerID, species)
		if err != nil {
			return models.SpeciesInfoResult{}, err
		}
		return resultFromEntry(existing), nil
	}

	result.Entry = entry
	return result, nil
}

func (s *speciesInfoService) newEntry(ctx context.Context, req models.SpeciesInfoRequest) (models.SpeciesInfo, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.SpeciesInfo{}, err
	}

	req.Specie = strings.TrimSpace(req.Specie)
	if err = s.validator.Validate(ctx, req); err != nil {
		return models.SpeciesInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return models.SpeciesInfo{
		ID:        s.idGenerator.Generate(),
		OwnerID:   ownerID,
		Species:   req.Specie,
		Info:      req.Response,
		CreatedAt: s.now(),
	}, nil
}

// resultFromEntry decodes a cached payload: a JSON string is raw model text,
// an object is parsed care info.
func resultFromEntry(entry models.SpeciesInfo) models.SpeciesInfoResult {
	result := models.SpeciesInfoResult{Kind: models.LLMResultRaw, Cached: true, Entry: entry}

	var raw string
	if err := json.Unmarshal(entry.Info, &raw); err == nil {
		result.Raw = raw
		return result
	}

	var info models.SpeciesCareInfo
	if err := json.Unmarshal(entry.Info, &info); err == nil && !isEmptyCareInfo(info) {
		result.Kind, result.Info = models.LLMResultParsed, &info
		return result
	}

	result.Raw = string(entry.Info)
	return result
}
