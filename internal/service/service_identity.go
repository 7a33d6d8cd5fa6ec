// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// providerIdentityService asks the auth provider who a token belongs to and
// remembers the answer for a short while.
type providerIdentityService struct {
	provider adapter.AuthProvider
	cache    *cache.Cache
	logger   *logger.Logger
}

// jwtIdentityService verifies provider-issued HS256 tokens locally.
type jwtIdentityService struct {
	signKey string
	issuer  string
	logger  *logger.Logger
}

// NewIdentityService returns the IdentityService selected by cfg.AuthMode.
func NewIdentityService(cfg config.App, provider adapter.AuthProvider, logger *logger.Logger) (IdentityService, error) {
	switch cfg.AuthMode {
	case config.AuthModeProvider:
		if provider == nil {
			return nil, fmt.Errorf("%w: auth provider is not configured", ErrUnknownAuthMode)
		}
		ttl := cfg.IdentityCacheTTL
		if ttl <= 0 {
			ttl = time.Minute
		}
		return &providerIdentityService{
			provider: provider,
			cache:    cache.New(ttl, 2*ttl),
			logger:   logger,
		}, nil
	case config.AuthModeJWT:
		return &jwtIdentityService{
			signKey: cfg.TokenSignKey,
			issuer:  cfg.TokenIssuer,
			logger:  logger,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthMode, cfg.AuthMode)
	}
}

func (s *providerIdentityService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrEmptyToken
	}

	if cached, ok := s.cache.Get(token); ok {
		if identity, ok := cached.(models.Identity); ok {
			return identity, nil
		}
	}

	identity, err := s.provider.GetUser(ctx, token)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*providerIdentityService.Resolve").Msg("auth provider lookup failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	s.cache.Set(token, identity, cache.DefaultExpiration)
	return identity, nil
}

func (s *jwtIdentityService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrEmptyToken
	}

	identity, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*jwtIdentityService.Resolve").Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}
