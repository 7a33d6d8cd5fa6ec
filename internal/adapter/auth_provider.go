// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const (
	authUserPath  = "/auth/v1/user"
	authTokenPath = "/auth/v1/token"
)

type authProvider struct {
	client  *utils.HTTPClient
	anonKey string
	logger  *logger.Logger
}

// NewAuthProvider returns an [AuthProvider] for the project rooted at url.
func NewAuthProvider(url, anonKey string, timeout time.Duration, logger *logger.Logger) AuthProvider {
	client := utils.NewHTTPClient(strings.TrimRight(url, "/"), timeout)
	client.SetHeader("apikey", anonKey)

	return &authProvider{
		client:  client,
		anonKey: anonKey,
		logger:  logger,
	}
}

func (a *authProvider) GetUser(ctx context.Context, accessToken string) (models.Identity, error) {
	var identity models.Identity
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&identity).
		Get(authUserPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authProvider.GetUser").Msg("user request failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		// the provider answers 403 for expired or malformed tokens
		if resp.StatusCode() == http.StatusForbidden {
			return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return models.Identity{}, err
	}
	if identity.ID == "" {
		return models.Identity{}, fmt.Errorf("%w: empty user id", ErrUnauthorized)
	}

	return identity, nil
}

func (a *authProvider) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	var session models.Session
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post(authTokenPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authProvider.SignIn").Msg("sign in request failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		// invalid credentials come back as 400
		if resp.StatusCode() == http.StatusBadRequest {
			return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return models.Session{}, err
	}
	if session.AccessToken == "" {
		return models.Session{}, fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}

	return session, nil
}
