// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/metrics"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
)

// defaultSessionCookie is read for the access token when the request carries
// no Authorization header.
const defaultSessionCookie = "sb-access-token"

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	sessionCookie  string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil.
func NewHandler(services *service.Services, m *metrics.Metrics, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	sessionCookie := appCfg.SessionCookie
	if sessionCookie == "" {
		sessionCookie = defaultSessionCookie
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		sessionCookie:  sessionCookie,
		requestTimeout: serverCfg.RequestTimeout,
		logger:         logger,
	}
}
