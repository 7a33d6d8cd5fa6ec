// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/mock"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func TestNewIdentityService_UnknownMode(t *testing.T) {
	_, err := NewIdentityService(config.App{AuthMode: "ldap"}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownAuthMode)

	_, err = NewIdentityService(config.App{AuthMode: config.AuthModeProvider}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownAuthMode)
}

func TestProviderIdentityService_Resolve_Caches(t *testing.T) {
	provider := mock.NewMockAuthProvider(gomock.NewController(t))
	svc, err := NewIdentityService(config.App{AuthMode: config.AuthModeProvider, IdentityCacheTTL: time.Minute}, provider, logger.Nop())
	require.NoError(t, err)

	want := models.Identity{ID: testOwnerID, Email: "gardener@example.com"}
	provider.EXPECT().GetUser(gomock.Any(), "token-a").Return(want, nil).Times(1)

	for range 3 {
		got, err := svc.Resolve(context.Background(), "token-a")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestProviderIdentityService_Resolve_Errors(t *testing.T) {
	provider := mock.NewMockAuthProvider(gomock.NewController(t))
	svc, err := NewIdentityService(config.App{AuthMode: config.AuthModeProvider}, provider, logger.Nop())
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyToken)

	provider.EXPECT().GetUser(gomock.Any(), "expired").Return(models.Identity{}, adapter.ErrUnauthorized)
	_, err = svc.Resolve(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	provider.EXPECT().GetUser(gomock.Any(), "any").Return(models.Identity{}, errors.New("dial tcp: refused"))
	_, err = svc.Resolve(context.Background(), "any")
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func signIdentityToken(t *testing.T, issuer string, identity models.Identity, key string) string {
	t.Helper()

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: identity.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestJWTIdentityService_Resolve(t *testing.T) {
	cfg := config.App{AuthMode: config.AuthModeJWT, TokenSignKey: "secret", TokenIssuer: "auth.example.com"}
	svc, err := NewIdentityService(cfg, nil, logger.Nop())
	require.NoError(t, err)

	identity := models.Identity{ID: testOwnerID, Email: "gardener@example.com"}

	token := signIdentityToken(t, "auth.example.com", identity, "secret")

	got, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	foreign := signIdentityToken(t, "elsewhere", identity, "secret")
	_, err = svc.Resolve(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	forged := signIdentityToken(t, "auth.example.com", identity, "other-key")
	_, err = svc.Resolve(context.Background(), forged)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
