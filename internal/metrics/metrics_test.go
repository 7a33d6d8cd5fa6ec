// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestMetrics_Record(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	m.ObserveHTTP(http.MethodGet, "/plants", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/plants", http.StatusOK, 10*time.Millisecond)
	m.LLMCall(OutcomeError)
	m.ImageUpload("inline", OutcomeSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/plants", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LLMRequests.WithLabelValues(OutcomeError)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ImageUploads.WithLabelValues("inline", OutcomeSuccess)), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
		m.LLMCall(OutcomeSuccess)
		m.ImageUpload("cloudinary", OutcomeError)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	m.LLMCall(OutcomeSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "plantkeeper_llm_requests_total")
}
