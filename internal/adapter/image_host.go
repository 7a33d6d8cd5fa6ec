// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/imaging"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/metrics"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

// NewImageHost returns the [ImageHost] selected by cfg.Provider.
func NewImageHost(cfg config.ImageHost, m *metrics.Metrics, logger *logger.Logger) (ImageHost, error) {
	switch cfg.Provider {
	case config.ImageHostCloudinary:
		return newCloudinaryHost(cfg, m, logger), nil
	case config.ImageHostInline, "":
		return &inlineHost{metrics: m}, nil
	default:
		return nil, fmt.Errorf("unknown image host provider %q", cfg.Provider)
	}
}

// cloudinaryHost performs signed uploads to the Cloudinary upload API.
type cloudinaryHost struct {
	client  *utils.HTTPClient
	cfg     config.ImageHost
	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
}

func newCloudinaryHost(cfg config.ImageHost, m *metrics.Metrics, logger *logger.Logger) *cloudinaryHost {
	return &cloudinaryHost{
		client:  utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		cfg:     cfg,
		now:     time.Now,
		metrics: m,
		logger:  logger,
	}
}

// Upload sends the image as a base64 data URL and returns its secure_url.
func (c *cloudinaryHost) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{
		"folder":    c.cfg.Folder,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	form := map[string]string{
		"file":      imaging.DataURL(contentType, data),
		"api_key":   c.cfg.APIKey,
		"signature": utils.SignParams(params, c.cfg.APISecret),
	}
	for k, v := range params {
		if v != "" {
			form[k] = v
		}
	}

	var result cloudinaryUploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		Post("/" + c.cfg.CloudName + "/image/upload")
	if err != nil {
		c.metrics.ImageUpload(config.ImageHostCloudinary, metrics.OutcomeError)
		log.Err(err).Str("func", "*cloudinaryHost.Upload").Msg("upload request failed")
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.metrics.ImageUpload(config.ImageHostCloudinary, metrics.OutcomeError)
		log.Err(err).Str("func", "*cloudinaryHost.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return "", err
	}
	if result.SecureURL == "" {
		c.metrics.ImageUpload(config.ImageHostCloudinary, metrics.OutcomeEmpty)
		return "", ErrEmptyUploadURL
	}

	c.metrics.ImageUpload(config.ImageHostCloudinary, metrics.OutcomeSuccess)
	return result.SecureURL, nil
}

// inlineHost keeps images inside the record as data URLs.
type inlineHost struct {
	metrics *metrics.Metrics
}

func (h *inlineHost) Upload(_ context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		h.metrics.ImageUpload(config.ImageHostInline, metrics.OutcomeEmpty)
		return "", imaging.ErrEmptyImage
	}
	h.metrics.ImageUpload(config.ImageHostInline, metrics.OutcomeSuccess)
	return imaging.DataURL(contentType, data), nil
}
