// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// DefaultRefreshInterval is used when the configured interval is not positive.
const DefaultRefreshInterval = 5 * time.Minute

// RefreshFunc receives the outcome of every background refresh.
type RefreshFunc func(plants []models.Plant, err error)

// RefreshWorker periodically reloads the plant list from the server so that
// watering badges and the offline cache stay current.
type RefreshWorker struct {
	service  service.ClientPlantService
	interval time.Duration
	notify   RefreshFunc
	logger   *logger.Logger
}

func NewRefreshWorker(svc service.ClientPlantService, interval time.Duration, notify RefreshFunc, logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &RefreshWorker{
		service:  svc,
		interval: interval,
		notify:   notify,
		logger:   logger,
	}
}

func (w *RefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Dur("interval", w.interval).Msg("refresh worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	plants, err := w.service.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn().Err(err).Str("func", "*RefreshWorker.refresh").Msg("background refresh failed")
	}
	if w.notify != nil {
		w.notify(plants, err)
	}
}
