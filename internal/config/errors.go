// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown timezone, log level or auth mode.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates missing credentials for the selected
	// auth mode.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLLMConfigs indicates a missing model endpoint or bad limits.
	ErrInvalidLLMConfigs = errors.New("invalid llm configuration")
	// ErrInvalidImageHostConfigs indicates an unknown provider or missing
	// provider credentials.
	ErrInvalidImageHostConfigs = errors.New("invalid image host configuration")
	// ErrInvalidAdapterConfigs indicates a missing server address or timeout
	// on the client.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a zero refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
