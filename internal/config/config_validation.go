// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q: %w", ErrInvalidAppConfigs, cfg.App.Timezone, err)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	switch cfg.App.AuthMode {
	case AuthModeProvider:
		if cfg.AuthProvider.URL == "" || cfg.AuthProvider.AnonKey == "" {
			return fmt.Errorf("%w: provider mode needs auth provider url and anon key", ErrInvalidAuthConfigs)
		}
	case AuthModeJWT:
		if cfg.App.TokenSignKey == "" {
			return fmt.Errorf("%w: jwt mode needs a token sign key", ErrInvalidAuthConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidAppConfigs, cfg.App.AuthMode)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.LLM.URL == "" || cfg.LLM.Model == "" || cfg.LLM.MaxTokens <= 0 {
		return ErrInvalidLLMConfigs
	}

	switch cfg.ImageHost.Provider {
	case ImageHostInline:
	case ImageHostCloudinary:
		if cfg.ImageHost.CloudName == "" || cfg.ImageHost.APIKey == "" || cfg.ImageHost.APISecret == "" {
			return fmt.Errorf("%w: cloudinary needs cloud name, api key and secret", ErrInvalidImageHostConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidImageHostConfigs, cfg.ImageHost.Provider)
	}
	if cfg.ImageHost.Quality <= 0 || cfg.ImageHost.Quality > 1 {
		return fmt.Errorf("%w: quality must be in (0, 1]", ErrInvalidImageHostConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
