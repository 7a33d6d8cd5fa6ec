// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the plant keeper server.
//
// All recording methods are safe to call on a nil *Metrics so components can
// run without instrumentation in tests.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)

// Metrics contains the collectors registered on one registry.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // requests by method, route, status
	HTTPDuration *prometheus.HistogramVec // latency by method and route
	LLMRequests  *prometheus.CounterVec   // completion calls by outcome
	ImageUploads *prometheus.CounterVec   // uploads by provider and outcome

	registry *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on registry. A nil
// registry gets a fresh one.
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantkeeper_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "plantkeeper_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method", "route"},
		),
		LLMRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantkeeper_llm_requests_total",
				Help: "Total number of language model completion calls by outcome",
			},
			[]string{"outcome"},
		),
		ImageUploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantkeeper_image_uploads_total",
				Help: "Total number of image uploads by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		registry: registry,
	}

	for _, c := range []prometheus.Collector{m.HTTPRequests, m.HTTPDuration, m.LLMRequests, m.ImageUploads} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	return m, nil
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// LLMCall records one completion call.
func (m *Metrics) LLMCall(outcome string) {
	if m == nil {
		return
	}
	m.LLMRequests.WithLabelValues(outcome).Inc()
}

// ImageUpload records one image upload.
func (m *Metrics) ImageUpload(provider, outcome string) {
	if m == nil {
		return
	}
	m.ImageUploads.WithLabelValues(provider, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
