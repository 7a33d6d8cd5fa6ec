// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type chatService struct {
	llm       adapter.LLMClient
	validator validators.Validator
	logger    *logger.Logger
}

func NewChatService(llm adapter.LLMClient, logger *logger.Logger) ChatService {
	return &chatService{
		llm:       llm,
		validator: validators.NewPlantValidator(),
		logger:    logger,
	}
}

func (c *chatService) Ask(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	answer, err := c.llm.Complete(ctx, req.Message)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*chatService.Ask").Msg("chat completion failed")
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	return models.ChatResponse{Response: answer}, nil
}
