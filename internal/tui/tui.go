// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the plant keeper client
// on top of bubbletea.
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	plants    service.ClientPlantService
	buildInfo models.AppBuildInfo
	email     string
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

// New creates the UI. email pre-fills the sign in form.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, email string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PlantService == nil {
		return nil, errNoServices
	}
	return &TUI{
		plants:    services.PlantService,
		buildInfo: buildInfo,
		email:     email,
		logger:    logger,
	}, nil
}

// LoginFlow runs the sign in screens. It returns [ErrUserQuit] when the user
// leaves without signing in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":  NewMenuModel(),
		"login": NewLoginModel(ctx, t.plants, t.email),
	}

	finalModel, err := t.run(NewRootModel(ctx, t.plants, pages, "menu", t.buildInfo))
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.signedIn {
		return ErrUserQuit
	}

	t.logger.Info().Msg("signed in")
	return nil
}

// MainLoop runs the plant screens until the user quits. logout is true when
// the user signed out or the session expired.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	finalModel, err := t.run(newMainLoopModel(ctx, t.plants, t.buildInfo, t.logger))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// Notify delivers a background refresh to the running program. It does
// nothing while no program is running.
func (t *TUI) Notify(plants []models.Plant, err error) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(plantsRefreshedMsg{plants: plants, err: err})
	}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, tea.WithAltScreen())

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	return p.Run()
}
