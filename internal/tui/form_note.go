// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// noteFormModel is a multi-line editor. ctrl+s saves; enter inserts a new
// line.
type noteFormModel struct {
	area       textarea.Model
	submitting bool
	errMsg     string
}

func newNoteFormModel() noteFormModel {
	area := textarea.New()
	area.Placeholder = "What happened today?"
	area.SetWidth(60)
	area.SetHeight(6)
	area.CharLimit = 4000
	area.Focus()
	return noteFormModel{area: area}
}

func (m noteFormModel) update(msg tea.Msg) (noteFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m noteFormModel) content() string {
	return strings.TrimSpace(m.area.Value())
}

func (m noteFormModel) View() string {
	var b strings.Builder
	b.WriteString(m.area.View())
	if m.submitting {
		b.WriteString("\n\n[Saving...]")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return b.String()
}
