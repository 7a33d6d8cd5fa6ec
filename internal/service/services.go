// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/metrics"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
)

type Services struct {
	PlantService       PlantService
	TipService         TipService
	FertilizerService  FertilizerService
	SpeciesInfoService SpeciesInfoService
	ChatService        ChatService
	IdentityService    IdentityService
	AppInfoService     AppInfoService
}

// NewServices builds the server services and the upstream adapters they
// share.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	llm := adapter.NewLLMClient(cfg.LLM, m, logger)

	imageHost, err := adapter.NewImageHost(cfg.ImageHost, m, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating image host: %w", err)
	}

	var authProvider adapter.AuthProvider
	if cfg.App.AuthMode == config.AuthModeProvider {
		authProvider = adapter.NewAuthProvider(cfg.AuthProvider.URL, cfg.AuthProvider.AnonKey, cfg.AuthProvider.Timeout, logger)
	}

	identityService, err := NewIdentityService(cfg.App, authProvider, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating identity service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	plantService := NewPlantValidationService().
		Wrap(NewPlantService(storages.PlantRepository, imageHost, cfg.App, cfg.ImageHost, logger))

	return &Services{
		PlantService:       plantService,
		TipService:         NewTipService(storages.PlantRepository, llm, cfg.App, logger),
		FertilizerService:  NewFertilizerService(llm, logger),
		SpeciesInfoService: NewSpeciesInfoService(storages.SpeciesInfoRepository, llm, logger),
		ChatService:        NewChatService(llm, logger),
		IdentityService:    identityService,
		AppInfoService:     appInfoService,
	}, nil
}

type ClientServices struct {
	PlantService ClientPlantService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientAuth, logger *logger.Logger) *ClientServices {
	var authProvider adapter.AuthProvider
	if cfg.URL != "" {
		authProvider = adapter.NewAuthProvider(cfg.URL, cfg.AnonKey, cfg.Timeout, logger)
	}

	return &ClientServices{
		PlantService: NewClientPlantService(serverAdapter, authProvider, storages.Cache, logger),
	}
}
