// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/plants"
	cfg.LLM.URL = "https://llm.example.com"
	cfg.AuthProvider.URL = "https://auth.example.com"
	cfg.AuthProvider.AnonKey = "anon"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "unknown timezone", mutate: func(cfg *StructuredConfig) { cfg.App.Timezone = "Mars/Olympus" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown log level", mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown auth mode", mutate: func(cfg *StructuredConfig) { cfg.App.AuthMode = "magic" }, wantErr: ErrInvalidAppConfigs},
		{name: "provider without anon key", mutate: func(cfg *StructuredConfig) { cfg.AuthProvider.AnonKey = "" }, wantErr: ErrInvalidAuthConfigs},
		{name: "jwt without key", mutate: func(cfg *StructuredConfig) { cfg.App.AuthMode = AuthModeJWT }, wantErr: ErrInvalidAuthConfigs},
		{name: "jwt with key", mutate: func(cfg *StructuredConfig) {
			cfg.App.AuthMode = AuthModeJWT
			cfg.App.TokenSignKey = "secret"
		}},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "missing llm url", mutate: func(cfg *StructuredConfig) { cfg.LLM.URL = "" }, wantErr: ErrInvalidLLMConfigs},
		{name: "cloudinary without secret", mutate: func(cfg *StructuredConfig) { cfg.ImageHost.Provider = ImageHostCloudinary }, wantErr: ErrInvalidImageHostConfigs},
		{name: "unknown image host", mutate: func(cfg *StructuredConfig) { cfg.ImageHost.Provider = "s3" }, wantErr: ErrInvalidImageHostConfigs},
		{name: "quality out of range", mutate: func(cfg *StructuredConfig) { cfg.ImageHost.Quality = 1.5 }, wantErr: ErrInvalidImageHostConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "file:plants.db"}},
			Workers: ClientWorkers{RefreshInterval: time.Minute},
		}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Workers.RefreshInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestAppLocation(t *testing.T) {
	assert.Equal(t, time.UTC, App{}.Location())
	assert.Equal(t, time.UTC, App{Timezone: "Nowhere/Land"}.Location())
	assert.Equal(t, "Europe/Berlin", App{Timezone: "Europe/Berlin"}.Location().String())
}
