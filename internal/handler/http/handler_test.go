// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/metrics"
	"github.com/MKhiriev/go-plant-keeper/internal/mock"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const (
	testToken   = "valid-token"
	testOwnerID = "owner-1"
	testPlantID = "0190c6a8-8f4e-7b3a-9c1d-2e3f4a5b6c7d"
)

type testMocks struct {
	plants      *mock.MockPlantService
	tips        *mock.MockTipService
	fertilizer  *mock.MockFertilizerService
	speciesInfo *mock.MockSpeciesInfoService
	chat        *mock.MockChatService
	identity    *mock.MockIdentityService
	appInfo     *mock.MockAppInfoService
}

type testServer struct {
	router  http.Handler
	metrics *metrics.Metrics
	m       testMocks
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		plants:      mock.NewMockPlantService(ctrl),
		tips:        mock.NewMockTipService(ctrl),
		fertilizer:  mock.NewMockFertilizerService(ctrl),
		speciesInfo: mock.NewMockSpeciesInfoService(ctrl),
		chat:        mock.NewMockChatService(ctrl),
		identity:    mock.NewMockIdentityService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		PlantService:       m.plants,
		TipService:         m.tips,
		FertilizerService:  m.fertilizer,
		SpeciesInfoService: m.speciesInfo,
		ChatService:        m.chat,
		IdentityService:    m.identity,
		AppInfoService:     m.appInfo,
	}

	mtr, err := metrics.NewMetrics(nil)
	require.NoError(t, err)

	h := NewHandler(services, mtr, config.App{}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	return &testServer{router: h.Init(), metrics: mtr, m: m}
}

// do performs a request; a non-empty token is sent as a bearer header and
// expected to resolve to testOwnerID.
func (s *testServer) do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) authorized() {
	s.m.identity.EXPECT().Resolve(gomock.Any(), testToken).Return(models.Identity{ID: testOwnerID}, nil).AnyTimes()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func TestNewHandler_DefaultSessionCookie(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.App{}, config.Server{}, logger.Nop())
	assert.Equal(t, defaultSessionCookie, h.sessionCookie)

	h = NewHandler(&service.Services{}, nil, config.App{SessionCookie: "sid"}, config.Server{}, logger.Nop())
	assert.Equal(t, "sid", h.sessionCookie)
}

func TestGetServerVersion(t *testing.T) {
	s := newTestServer(t)
	s.m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.2")

	rec := s.do(t, http.MethodGet, "/api/version", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.4.2"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.InDelta(t, 1, testutil.ToFloat64(s.metrics.HTTPRequests.WithLabelValues("GET", "/api/version", "200")), 0)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	s.do(t, http.MethodGet, "/api/version", "", "")

	rec := s.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "plantkeeper_http_requests_total")
}

func TestMethodNotAllowed_JSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPatch, "/api/version", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", decodeError(t, rec))
}

func TestUnknownPath_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, decodeError(t, rec))
}

func TestTraceIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	s.m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))

	rec = s.do(t, http.MethodGet, "/api/version", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
