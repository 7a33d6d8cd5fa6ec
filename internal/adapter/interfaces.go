// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to everything outside the process over HTTP: the
// language model, the image host, the authentication provider and, for the
// terminal client, the plant keeper server itself.
//
// All implementations use resty through [utils.HTTPClient]. Upstream statuses
// are mapped by mapHTTPError to the sentinel errors of this package so
// callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-plant-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LLMClient sends a single prompt to an OpenAI-compatible chat-completion
// endpoint and returns the text of the first choice.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageHost stores an encoded image and returns a URL it can be fetched from.
type ImageHost interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// AuthProvider is the external authentication service.
type AuthProvider interface {
	// GetUser resolves an access token to the user it was issued for.
	GetUser(ctx context.Context, accessToken string) (models.Identity, error)
	// SignIn exchanges e-mail and password for a session.
	SignIn(ctx context.Context, email, password string) (models.Session, error)
}

// ServerAdapter is the terminal client's typed view of the server API.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	ListPlants(ctx context.Context, archived models.ArchivedFilter) ([]models.Plant, error)
	GetPlant(ctx context.Context, plantID string) (models.Plant, error)
	CreatePlant(ctx context.Context, in models.PlantInput) (models.Plant, error)
	ArchivePlant(ctx context.Context, plantID string) error
	WaterPlant(ctx context.Context, plantID string) (models.Plant, error)

	AddNote(ctx context.Context, plantID string, in models.NoteInput) (models.Note, error)
	DeleteNote(ctx context.Context, plantID, noteID string) error
	AddPhoto(ctx context.Context, plantID string, in models.PhotoInput) (models.Photo, error)
	DeletePhoto(ctx context.Context, plantID, photoID string) error

	DailyTip(ctx context.Context, plantID string) (models.TipResponse, error)
	RegenerateTip(ctx context.Context, plantID string) (models.TipResponse, error)
	Fertilizer(ctx context.Context, species string) (models.FertilizerResult, error)
	SpeciesInfo(ctx context.Context, species string) (models.SpeciesInfoResult, error)

	Version(ctx context.Context) (string, error)
}
