// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the client's server connection settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	AccessToken    string
}

// ClientAuth holds the auth provider settings used to sign in.
type ClientAuth struct {
	URL      string
	AnonKey  string
	Email    string
	Password string
	Timeout  time.Duration
}

// ClientDB contains local SQLite cache settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backends.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Auth    ClientAuth
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration and maps the fields the
// terminal client needs. Server-only groups are not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			AccessToken:    cfg.Adapter.AccessToken,
		},
		Auth: ClientAuth{
			URL:      cfg.AuthProvider.URL,
			AnonKey:  cfg.AuthProvider.AnonKey,
			Email:    cfg.AuthProvider.Email,
			Password: cfg.AuthProvider.Password,
			Timeout:  cfg.AuthProvider.Timeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
