// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

// auth resolves the caller's identity and stores it in the request context
// with [utils.WithIdentity].
//
// The access token is taken from an "Authorization: Bearer <token>" header
// or, when the header is absent, from the session cookie. Requests without a
// token or with a token the identity service rejects get 401; a failing auth
// provider yields 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.accessToken(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request without usable access token")
			writeError(w, r, service.ErrUnauthorized, "*Handler.auth")
			return
		}

		ctx := r.Context()
		identity, err := h.services.IdentityService.Resolve(ctx, token)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("owner_id", identity.ID)
		})
		ctx = l.WithContext(utils.WithIdentity(ctx, identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) accessToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}

	cookie, err := r.Cookie(h.sessionCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrNoAccessToken
	}
	return cookie.Value, nil
}
