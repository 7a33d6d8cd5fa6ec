// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-plant-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, when set,
// is delivered to the new page as a message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page after a sign in attempt.
type LoginResult struct {
	Err   error
	Email string
}

type serverVersionMsg struct {
	version string
	err     error
}

type plantsLoadedMsg struct {
	plants  []models.Plant
	offline bool
	err     error
}

// plantsRefreshedMsg is sent by the background refresh worker.
type plantsRefreshedMsg struct {
	plants []models.Plant
	err    error
}

type plantLoadedMsg struct {
	plant models.Plant
	err   error
}

type plantCreatedMsg struct {
	plant models.Plant
	err   error
}

type plantWateredMsg struct {
	plant models.Plant
	err   error
}

type plantArchivedMsg struct {
	err error
}

// detailChangedMsg reports a note or photo change; the open plant is
// reloaded on success.
type detailChangedMsg struct {
	status string
	err    error
}

type tipMsg struct {
	plantID string
	tip     models.TipResponse
	err     error
}

type resultMsg struct {
	title string
	body  string
	err   error
}

type copiedMsg struct {
	err error
}

type signedOutMsg struct {
	err error
}
