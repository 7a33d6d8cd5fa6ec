// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// A pre-configured access token from cfg is applied right away.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.AccessToken)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and decodes a 2xx body into result when it is not nil.
func (h *httpServerAdapter) do(req *resty.Request, method, path string, result any) error {
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	return mapHTTPError(resp)
}

func plantPath(plantID string, parts ...string) string {
	segments := append([]string{"/plants", url.PathEscape(plantID)}, parts...)
	return strings.Join(segments, "/")
}

func (h *httpServerAdapter) ListPlants(ctx context.Context, archived models.ArchivedFilter) ([]models.Plant, error) {
	req := h.authedRequest(ctx)
	if archived != models.ArchivedAny {
		req.SetQueryParam("archived", string(archived))
	}

	plants := make([]models.Plant, 0)
	if err := h.do(req, resty.MethodGet, "/plants", &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

func (h *httpServerAdapter) GetPlant(ctx context.Context, plantID string) (models.Plant, error) {
	var plant models.Plant
	err := h.do(h.authedRequest(ctx), resty.MethodGet, plantPath(plantID), &plant)
	return plant, err
}

func (h *httpServerAdapter) CreatePlant(ctx context.Context, in models.PlantInput) (models.Plant, error) {
	var plant models.Plant
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in)
	err := h.do(req, resty.MethodPost, "/plants", &plant)
	return plant, err
}

func (h *httpServerAdapter) ArchivePlant(ctx context.Context, plantID string) error {
	return h.do(h.authedRequest(ctx), resty.MethodDelete, plantPath(plantID), nil)
}

func (h *httpServerAdapter) WaterPlant(ctx context.Context, plantID string) (models.Plant, error) {
	var plant models.Plant
	err := h.do(h.authedRequest(ctx), resty.MethodPost, plantPath(plantID, "water"), &plant)
	return plant, err
}

func (h *httpServerAdapter) AddNote(ctx context.Context, plantID string, in models.NoteInput) (models.Note, error) {
	var note models.Note
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in)
	err := h.do(req, resty.MethodPost, plantPath(plantID, "notes"), &note)
	return note, err
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, plantID, noteID string) error {
	return h.do(h.authedRequest(ctx), resty.MethodDelete, plantPath(plantID, "notes", url.PathEscape(noteID)), nil)
}

func (h *httpServerAdapter) AddPhoto(ctx context.Context, plantID string, in models.PhotoInput) (models.Photo, error) {
	var photo models.Photo
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in)
	err := h.do(req, resty.MethodPost, plantPath(plantID, "photos"), &photo)
	return photo, err
}

func (h *httpServerAdapter) DeletePhoto(ctx context.Context, plantID, photoID string) error {
	return h.do(h.authedRequest(ctx), resty.MethodDelete, plantPath(plantID, "photos", url.PathEscape(photoID)), nil)
}

func (h *httpServerAdapter) DailyTip(ctx context.Context, plantID string) (models.TipResponse, error) {
	var tip models.TipResponse
	err := h.do(h.authedRequest(ctx), resty.MethodGet, plantPath(plantID, "tip"), &tip)
	return tip, err
}

func (h *httpServerAdapter) RegenerateTip(ctx context.Context, plantID string) (models.TipResponse, error) {
	var tip models.TipResponse
	err := h.do(h.authedRequest(ctx), resty.MethodPost, plantPath(plantID, "tip"), &tip)
	return tip, err
}

func (h *httpServerAdapter) Fertilizer(ctx context.Context, species string) (models.FertilizerResult, error) {
	var result models.FertilizerResult
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FertilizerRequest{Species: species})
	err := h.do(req, resty.MethodPost, "/generate-fertilizer", &result)
	return result, err
}

func (h *httpServerAdapter) SpeciesInfo(ctx context.Context, species string) (models.SpeciesInfoResult, error) {
	var result models.SpeciesInfoResult
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SpeciesInfoRequest{Specie: species})
	err := h.do(req, resty.MethodPost, "/plants/info/generate", &result)
	return result, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse
	err := h.do(h.client.R().SetContext(ctx), resty.MethodGet, "/api/version", &version)
	return version.Version, err
}
