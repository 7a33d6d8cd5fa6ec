// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// type-safe context keys, JSON response writing, the resty HTTP client
// wrapper, id generation, token parsing and request signing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-plant-keeper/models"
)

// contextKey is a private type for context keys so they never collide with
// keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key the auth middleware stores the resolved
// [models.Identity] under.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the identity stored by the auth middleware.
// ok is false when the value is missing, has an unexpected type or carries an
// empty id.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.ID == "" {
		return models.Identity{}, false
	}
	return identity, true
}

// GetOwnerIDFromContext is a shortcut returning only the identity id.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	return identity.ID, ok
}
