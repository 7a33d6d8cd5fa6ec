// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/metrics"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type llmClient struct {
	client  *utils.HTTPClient
	cfg     config.LLM
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewLLMClient returns an [LLMClient] posting to cfg.URL. The URL is the full
// completion endpoint, not an API root.
func NewLLMClient(cfg config.LLM, m *metrics.Metrics, logger *logger.Logger) LLMClient {
	client := utils.NewHTTPClient("", cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &llmClient{
		client:  client,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// Complete sends prompt as a single user message.
func (l *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	var result chatCompletionResponse
	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model:       l.cfg.Model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			MaxTokens:   l.cfg.MaxTokens,
			Temperature: l.cfg.Temperature,
		}).
		SetResult(&result).
		Post(l.cfg.URL)
	if err != nil {
		l.metrics.LLMCall(metrics.OutcomeError)
		log.Err(err).Str("func", "*llmClient.Complete").Msg("completion request failed")
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		l.metrics.LLMCall(metrics.OutcomeError)
		log.Err(err).Str("func", "*llmClient.Complete").Int("status", resp.StatusCode()).Msg("completion rejected")
		return "", err
	}

	if len(result.Choices) == 0 {
		l.metrics.LLMCall(metrics.OutcomeEmpty)
		return "", ErrEmptyCompletion
	}

	l.metrics.LLMCall(metrics.OutcomeSuccess)
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
