// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// photoFormModel asks for a local image path and an optional caption. The
// file is compressed by the client service before upload.
type photoFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newPhotoFormModel() photoFormModel {
	path := textinput.New()
	path.Placeholder = "~/Pictures/basil.jpg"
	path.Width = 50
	path.Focus()

	caption := textinput.New()
	caption.Placeholder = "optional"
	caption.CharLimit = 200
	caption.Width = 50

	return photoFormModel{inputs: []textinput.Model{path, caption}}
}

func (m photoFormModel) update(msg tea.Msg) (photoFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// path returns the entered path with a leading ~ expanded.
func (m photoFormModel) path() string {
	p := strings.TrimSpace(m.inputs[0].Value())
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func (m photoFormModel) caption() string {
	return strings.TrimSpace(m.inputs[1].Value())
}

func (m photoFormModel) View() string {
	var b strings.Builder
	b.WriteString("File     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Caption  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Images are resized to 1200px before upload."))

	if m.submitting {
		b.WriteString("\n\n[Uploading...]")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return b.String()
}
