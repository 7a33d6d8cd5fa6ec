// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/care"
	"github.com/MKhiriev/go-plant-keeper/internal/imaging"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type clientPlantService struct {
	serverAdapter adapter.ServerAdapter
	authProvider  adapter.AuthProvider
	cache         store.LocalCache

	now    func() time.Time
	logger *logger.Logger
}

// NewClientPlantService wires the terminal client's service. authProvider may
// be nil when the client only works with a preconfigured access token.
func NewClientPlantService(
	serverAdapter adapter.ServerAdapter,
	authProvider adapter.AuthProvider,
	cache store.LocalCache,
	logger *logger.Logger,
) ClientPlantService {
	return &clientPlantService{
		serverAdapter: serverAdapter,
		authProvider:  authProvider,
		cache:         cache,
		now:           time.Now,
		logger:        logger,
	}
}

func (c *clientPlantService) Restore(ctx context.Context) (bool, error) {
	if c.serverAdapter.Token() != "" {
		return true, nil
	}

	token, err := c.cache.LoadToken(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading session: %w", err)
	}

	c.serverAdapter.SetToken(token)
	return true, nil
}

func (c *clientPlantService) SignIn(ctx context.Context, email, password string) error {
	if c.authProvider == nil {
		return fmt.Errorf("%w: auth provider is not configured", ErrNotSignedIn)
	}
	if email == "" || password == "" {
		return fmt.Errorf("%w: e-mail and password are required", ErrInvalidDataProvided)
	}

	session, err := c.authProvider.SignIn(ctx, email, password)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrWrongPassword
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	c.serverAdapter.SetToken(session.AccessToken)
	if err = c.cache.SaveToken(ctx, session.AccessToken); err != nil {
		c.logger.Warn().Err(err).Str("func", "*clientPlantService.SignIn").Msg("session was not saved locally")
	}

	return nil
}

func (c *clientPlantService) SignOut(ctx context.Context) error {
	c.serverAdapter.SetToken("")
	return c.cache.ClearToken(ctx)
}

// Plants serves the cached list when the server cannot be reached. Care state
// of cached plants is recomputed for the current time.
func (c *clientPlantService) Plants(ctx context.Context) ([]models.Plant, bool, error) {
	plants, err := c.Refresh(ctx)
	if err == nil {
		return plants, false, nil
	}
	if errors.Is(err, ErrNotSignedIn) {
		return nil, false, err
	}

	cached, savedAt, cacheErr := c.cache.LoadPlants(ctx)
	if cacheErr != nil || savedAt.IsZero() {
		return nil, false, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	c.logger.Warn().Err(err).Time("saved_at", savedAt).Msg("server unavailable, showing cached plants")
	care.Attach(cached, c.now())
	return cached, true, nil
}

// Refresh lists active plants and stores them in the local cache. A cache
// write failure is logged and does not fail the refresh.
func (c *clientPlantService) Refresh(ctx context.Context) ([]models.Plant, error) {
	plants, err := c.serverAdapter.ListPlants(ctx, models.ArchivedExclude)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	if err = c.cache.SavePlants(ctx, plants, c.now()); err != nil {
		c.logger.Warn().Err(err).Str("func", "*clientPlantService.Refresh").Msg("plants were not cached")
	}

	return plants, nil
}

func (c *clientPlantService) Plant(ctx context.Context, plantID string) (models.Plant, error) {
	plant, err := c.serverAdapter.GetPlant(ctx, plantID)
	return plant, mapAdapterError(err)
}

func (c *clientPlantService) Create(ctx context.Context, in models.PlantInput) (models.Plant, error) {
	plant, err := c.serverAdapter.CreatePlant(ctx, in)
	return plant, mapAdapterError(err)
}

func (c *clientPlantService) Archive(ctx context.Context, plantID string) error {
	return mapAdapterError(c.serverAdapter.ArchivePlant(ctx, plantID))
}

func (c *clientPlantService) Water(ctx context.Context, plantID string) (models.Plant, error) {
	plant, err := c.serverAdapter.WaterPlant(ctx, plantID)
	return plant, mapAdapterError(err)
}

func (c *clientPlantService) AddNote(ctx context.Context, plantID, content string) (models.Note, error) {
	note, err := c.serverAdapter.AddNote(ctx, plantID, models.NoteInput{Content: content})
	return note, mapAdapterError(err)
}

func (c *clientPlantService) DeleteNote(ctx context.Context, plantID, noteID string) error {
	return mapAdapterError(c.serverAdapter.DeleteNote(ctx, plantID, noteID))
}

// AddPhoto shrinks the image to the timeline size before upload. Images that
// cannot be decoded are sent as they are and left to the server to judge.
func (c *clientPlantService) AddPhoto(ctx context.Context, plantID, path, caption string) (models.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	contentType := http.DetectContentType(data)
	if compressed, err := imaging.Compress(data, imaging.TimelineMaxWidth, imaging.TimelineQuality); err == nil {
		data, contentType = compressed, imaging.ContentTypeJPEG
	} else {
		c.logger.Debug().Err(err).Str("path", path).Msg("photo was not compressed")
	}

	photo, err := c.serverAdapter.AddPhoto(ctx, plantID, models.PhotoInput{
		Photo:   imaging.DataURL(contentType, data),
		Caption: caption,
	})
	return photo, mapAdapterError(err)
}

func (c *clientPlantService) DeletePhoto(ctx context.Context, plantID, photoID string) error {
	return mapAdapterError(c.serverAdapter.DeletePhoto(ctx, plantID, photoID))
}

func (c *clientPlantService) DailyTip(ctx context.Context, plantID string) (models.TipResponse, error) {
	tip, err := c.serverAdapter.DailyTip(ctx, plantID)
	return tip, mapAdapterError(err)
}

func (c *clientPlantService) RegenerateTip(ctx context.Context, plantID string) (models.TipResponse, error) {
	tip, err := c.serverAdapter.RegenerateTip(ctx, plantID)
	return tip, mapAdapterError(err)
}

func (c *clientPlantService) Fertilizer(ctx context.Context, species string) (models.FertilizerResult, error) {
	result, err := c.serverAdapter.Fertilizer(ctx, species)
	return result, mapAdapterError(err)
}

func (c *clientPlantService) SpeciesInfo(ctx context.Context, species string) (models.SpeciesInfoResult, error) {
	result, err := c.serverAdapter.SpeciesInfo(ctx, species)
	return result, mapAdapterError(err)
}

func (c *clientPlantService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.serverAdapter.Version(ctx)
	return version, mapAdapterError(err)
}
