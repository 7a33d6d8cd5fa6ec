// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaults returns the values used when no source sets a field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          "dev",
			LogLevel:         "debug",
			Timezone:         "UTC",
			AuthMode:         AuthModeProvider,
			SessionCookie:    "sb-access-token",
			IdentityCacheTTL: time.Minute,
		},
		Storage: Storage{
			Local: Local{DSN: "file:plant-keeper.db?_foreign_keys=on"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 90 * time.Second,
		},
		LLM: LLM{
			Model:       "deepseek/deepseek-chat",
			MaxTokens:   1000,
			Temperature: 0.7,
			Timeout:     60 * time.Second,
		},
		ImageHost: ImageHost{
			Provider: ImageHostInline,
			BaseURL:  "https://api.cloudinary.com/v1_1",
			Folder:   "plant_photos",
			MaxWidth: 1200,
			Quality:  0.8,
			Timeout:  30 * time.Second,
		},
		AuthProvider: AuthProvider{
			Timeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 90 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
	}
}
