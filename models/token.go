// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token holds the claims of an access token verified locally in jwt auth mode.
//
// The auth provider issues HS256 tokens whose subject is the user id and
// which carry the e-mail address as a private claim.
type Token struct {
	// Token is the parsed JWT. Excluded from JSON; only claims matter outside
	// the verifier.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email is the address claim issued by the provider.
	Email string `json:"email,omitempty"`
}

// Identity converts the token claims into an [Identity].
func (t *Token) Identity() (Identity, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return Identity{}, err
	}
	if subject == "" {
		return Identity{}, errors.New("empty token subject")
	}
	return Identity{ID: subject, Email: t.Email}, nil
}
