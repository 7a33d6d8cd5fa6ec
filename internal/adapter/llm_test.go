// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/metrics"
)

const testLLMURL = "https://llm.test/api/v1/chat/completions"

func newTestLLM(t *testing.T) (*llmClient, *metrics.Metrics) {
	t.Helper()

	m, err := metrics.NewMetrics(nil)
	require.NoError(t, err)

	cfg := config.LLM{
		URL:         testLLMURL,
		APIKey:      "secret",
		Model:       "deepseek/deepseek-chat",
		MaxTokens:   1000,
		Temperature: 0.7,
		Timeout:     time.Second,
	}
	c := NewLLMClient(cfg, m, logger.Nop()).(*llmClient)

	httpmock.ActivateNonDefault(c.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return c, m
}

func TestLLMClient_Complete_Success(t *testing.T) {
	c, m := newTestLLM(t)

	httpmock.RegisterResponder(http.MethodPost, testLLMURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))

			var body chatCompletionRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "deepseek/deepseek-chat", body.Model)
			assert.Equal(t, 1000, body.MaxTokens)
			assert.InDelta(t, 0.7, body.Temperature, 1e-9)
			require.Len(t, body.Messages, 1)
			assert.Equal(t, "user", body.Messages[0].Role)
			assert.Equal(t, "How often to water basil?", body.Messages[0].Content)

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": "  Every 3 days.\n"}},
				},
			})
		})

	answer, err := c.Complete(context.Background(), "How often to water basil?")
	require.NoError(t, err)
	assert.Equal(t, "Every 3 days.", answer)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LLMRequests.WithLabelValues(metrics.OutcomeSuccess)), 0)
}

func TestLLMClient_Complete_EmptyChoices(t *testing.T) {
	c, m := newTestLLM(t)

	httpmock.RegisterResponder(http.MethodPost, testLLMURL,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"choices": []any{}}))

	_, err := c.Complete(context.Background(), "hi")
	require.ErrorIs(t, err, ErrEmptyCompletion)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LLMRequests.WithLabelValues(metrics.OutcomeEmpty)), 0)
}

func TestLLMClient_Complete_UpstreamError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{name: "server error", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestLLM(t)

			httpmock.RegisterResponder(http.MethodPost, testLLMURL,
				httpmock.NewStringResponder(tt.status, `{"error":"nope"}`))

			_, err := c.Complete(context.Background(), "hi")
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
			assert.InDelta(t, 1, testutil.ToFloat64(m.LLMRequests.WithLabelValues(metrics.OutcomeError)), 0)
		})
	}
}

func TestLLMClient_Complete_TransportError(t *testing.T) {
	c, _ := newTestLLM(t)

	httpmock.RegisterResponder(http.MethodPost, testLLMURL, httpmock.NewErrorResponder(context.DeadlineExceeded))

	_, err := c.Complete(context.Background(), "hi")
	require.ErrorIs(t, err, ErrRequestFailed)
}
