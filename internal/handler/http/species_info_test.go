// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-plant-keeper/internal/app"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const testSpeciesInfoID = "0190c6a8-8f4e-7b3a-9c1d-bbbbbbbbbbbb"

func TestGetSpeciesInfo(t *testing.T) {
	s := newTestServer(t)
	s.authorized()
	s.m.speciesInfo.EXPECT().Get(gomock.Any(), "Basil").
		Return(models.SpeciesInfo{ID: testSpeciesInfoID, Species: "Basil", Info: json.RawMessage(`{"light":"sun"}`)}, nil)

	rec := s.do(t, http.MethodGet, "/plants/info?specie=Basil", "", testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"info":{"light":"sun"}`)
}

func TestGetSpeciesInfo_NotCached(t *testing.T) {
	s := newTestServer(t)
	s.authorized()
	s.m.speciesInfo.EXPECT().Get(gomock.Any(), "Mint").Return(models.SpeciesInfo{}, store.ErrSpeciesInfoNotFound)

	rec := s.do(t, http.MethodGet, "/plants/info?specie=Mint", "", testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgSpeciesInfoNotFound, decodeError(t, rec))
}

func TestSaveSpeciesInfo(t *testing.T) {
	tests := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{name: "new entry", created: true, wantStatus: http.StatusCreated},
		{name: "existing entry kept", created: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.authorized()
			s.m.speciesInfo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req models.SpeciesInfoRequest) (models.SpeciesInfoSaveResponse, error) {
					assert.Equal(t, "Basil", req.Specie)
					assert.JSONEq(t, `{"soil":"loam"}`, string(req.Response))
					return models.SpeciesInfoSaveResponse{Success: true, Created: tt.created, ID: testSpeciesInfoID}, nil
				},
			)

			rec := s.do(t, http.MethodPost, "/plants/info", `{"specie":"Basil","response":{"soil":"loam"}}`, testToken)
			require.Equal(t, tt.wantStatus, rec.Code)

			var got models.SpeciesInfoSaveResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.created, got.Created)
			assert.Equal(t, testSpeciesInfoID, got.ID)
		})
	}
}

func TestReplaceSpeciesInfo(t *testing.T) {
	s := newTestServer(t)
	s.authorized()
	s.m.speciesInfo.EXPECT().Replace(gomock.Any(), gomock.Any()).
		Return(models.SpeciesInfo{ID: testSpeciesInfoID, Species: "Basil", Info: json.RawMessage(`"updated"`)}, nil)

	rec := s.do(t, http.MethodPut, "/plants/info", `{"specie":"Basil","response":"updated"}`, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"info":"updated"`)
}

func TestDeleteSpeciesInfo(t *testing.T) {
	s := newTestServer(t)
	s.authorized()
	s.m.speciesInfo.EXPECT().Delete(gomock.Any(), testSpeciesInfoID).Return(nil)

	rec := s.do(t, http.MethodDelete, "/plants/info?id="+testSpeciesInfoID, "", testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestGenerateSpeciesInfo(t *testing.T) {
	s := newTestServer(t)
	s.authorized()
	s.m.speciesInfo.EXPECT().Generate(gomock.Any(), "Basil").
		Return(models.SpeciesInfoResult{Kind: models.LLMResultRaw, Raw: "Likes sun", Cached: true}, nil)

	rec := s.do(t, http.MethodPost, "/plants/info/generate", `{"specie":"Basil"}`, testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.SpeciesInfoResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Cached)
	assert.Equal(t, "Likes sun", got.Raw)
}
