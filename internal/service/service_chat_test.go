// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/mock"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func TestChatService_Ask(t *testing.T) {
	llm := mock.NewMockLLMClient(gomock.NewController(t))
	svc := NewChatService(llm, logger.Nop())

	llm.EXPECT().Complete(gomock.Any(), "How often to water cacti?").Return("Rarely.", nil)

	got, err := svc.Ask(context.Background(), models.ChatRequest{Message: "How often to water cacti?"})
	require.NoError(t, err)
	assert.Equal(t, "Rarely.", got.Response)
}

func TestChatService_Ask_EmptyMessage(t *testing.T) {
	llm := mock.NewMockLLMClient(gomock.NewController(t))
	svc := NewChatService(llm, logger.Nop())

	_, err := svc.Ask(context.Background(), models.ChatRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChatService_Ask_UpstreamFailure(t *testing.T) {
	llm := mock.NewMockLLMClient(gomock.NewController(t))
	svc := NewChatService(llm, logger.Nop())

	llm.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("connection reset"))

	_, err := svc.Ask(context.Background(), models.ChatRequest{Message: "hi"})
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}
