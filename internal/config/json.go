// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
		Timezone         string   `json:"timezone"`
		AuthMode         string   `json:"auth_mode"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		SessionCookie    string   `json:"session_cookie"`
		IdentityCacheTTL Duration `json:"identity_cache_ttl"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Local struct {
			DSN string `json:"dsn"`
		} `json:"local"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	LLM struct {
		URL         string   `json:"url"`
		APIKey      string   `json:"api_key"`
		Model       string   `json:"model"`
		MaxTokens   int      `json:"max_tokens"`
		Temperature float64  `json:"temperature"`
		Timeout     Duration `json:"timeout"`
	} `json:"llm"`

	ImageHost struct {
		Provider  string   `json:"provider"`
		BaseURL   string   `json:"base_url"`
		CloudName string   `json:"cloud_name"`
		APIKey    string   `json:"api_key"`
		APISecret string   `json:"api_secret"`
		Folder    string   `json:"folder"`
		MaxWidth  int      `json:"max_width"`
		Quality   float64  `json:"quality"`
		Timeout   Duration `json:"timeout"`
	} `json:"image_host"`

	AuthProvider struct {
		URL      string   `json:"url"`
		AnonKey  string   `json:"anon_key"`
		Email    string   `json:"email"`
		Password string   `json:"password"`
		Timeout  Duration `json:"timeout"`
	} `json:"auth_provider"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AccessToken    string   `json:"access_token"`
	} `json:"adapter"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:          j.App.Version,
			LogLevel:         j.App.LogLevel,
			Timezone:         j.App.Timezone,
			AuthMode:         j.App.AuthMode,
			TokenSignKey:     j.App.TokenSignKey,
			TokenIssuer:      j.App.TokenIssuer,
			SessionCookie:    j.App.SessionCookie,
			IdentityCacheTTL: time.Duration(j.App.IdentityCacheTTL),
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DB.DSN},
			Local: Local{DSN: j.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		LLM: LLM{
			URL:         j.LLM.URL,
			APIKey:      j.LLM.APIKey,
			Model:       j.LLM.Model,
			MaxTokens:   j.LLM.MaxTokens,
			Temperature: j.LLM.Temperature,
			Timeout:     time.Duration(j.LLM.Timeout),
		},
		ImageHost: ImageHost{
			Provider:  j.ImageHost.Provider,
			BaseURL:   j.ImageHost.BaseURL,
			CloudName: j.ImageHost.CloudName,
			APIKey:    j.ImageHost.APIKey,
			APISecret: j.ImageHost.APISecret,
			Folder:    j.ImageHost.Folder,
			MaxWidth:  j.ImageHost.MaxWidth,
			Quality:   j.ImageHost.Quality,
			Timeout:   time.Duration(j.ImageHost.Timeout),
		},
		AuthProvider: AuthProvider{
			URL:      j.AuthProvider.URL,
			AnonKey:  j.AuthProvider.AnonKey,
			Email:    j.AuthProvider.Email,
			Password: j.AuthProvider.Password,
			Timeout:  time.Duration(j.AuthProvider.Timeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			AccessToken:    j.Adapter.AccessToken,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(j.Workers.RefreshInterval),
		},
	}, nil
}

// Duration wraps time.Duration so JSON can carry either "1h30m" strings or
// nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		*d = 0
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
