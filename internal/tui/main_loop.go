// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
	screenNote
	screenPhoto
	screenResult
	screenAbout
)

type mainLoopModel struct {
	ctx       context.Context
	plants    service.ClientPlantService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	now       func() time.Time
	writeClip func(string) error

	screen     screen
	list       listModel
	detail     detailModel
	create     plantFormModel
	note       noteFormModel
	photo      photoFormModel
	result     resultView
	resultBack screen

	confirm *confirmModel
	overlay *errorOverlayModel

	spinner       spinner.Model
	busy          bool
	status        string
	serverVersion string

	logout bool
}

func newMainLoopModel(ctx context.Context, plants service.ClientPlantService, buildInfo models.AppBuildInfo, log *logger.Logger) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:       ctx,
		plants:    plants,
		buildInfo: buildInfo,
		logger:    log,
		now:       time.Now,
		writeClip: clipboard.WriteAll,
		list:      listModel{loading: true},
		spinner:   s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPlants(), cmdServerVersion(m.ctx, m.plants), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case plantsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.list.setPlants(msg.plants)
		m.list.offline = msg.offline
		return m, nil
	case plantsRefreshedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNotSignedIn) {
				return m.fail(msg.err)
			}
			return m, nil
		}
		m.list.setPlants(msg.plants)
		m.list.offline = false
		return m, nil
	case plantLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if m.screen != screenDetail || m.detail.plant.ID != msg.plant.ID {
			m.detail = newDetailModel(msg.plant)
		} else {
			m.detail.setPlant(msg.plant)
		}
		if m.screen == screenList {
			// Opening a plant fetches its tip of the day in the background.
			m.screen = screenDetail
			return m, m.cmdDailyTip(msg.plant.ID)
		}
		return m, nil
	case plantCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.create.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "Plant added: " + msg.plant.Species
		m.list.loading = true
		return m, m.cmdLoadPlants()
	case plantWateredMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Watered " + msg.plant.Species
		m.replaceInList(msg.plant)
		if m.screen == screenDetail && m.detail.plant.ID == msg.plant.ID {
			msg.plant.Notes = m.detail.plant.Notes
			msg.plant.Photos = m.detail.plant.Photos
			m.detail.setPlant(msg.plant)
		}
		return m, nil
	case plantArchivedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.screen = screenList
		m.status = "Plant archived"
		m.list.loading = true
		return m, m.cmdLoadPlants()
	case detailChangedMsg:
		m.busy = false
		m.note.submitting = false
		m.photo.submitting = false
		if msg.err != nil {
			switch m.screen {
			case screenNote:
				m.note.errMsg = humanizeError(msg.err)
				return m, nil
			case screenPhoto:
				m.photo.errMsg = humanizeError(msg.err)
				return m, nil
			}
			return m.fail(msg.err)
		}
		m.screen = screenDetail
		m.status = msg.status
		m.busy = true
		return m, m.cmdLoadPlant(m.detail.plant.ID)
	case tipMsg:
		m.busy = false
		if m.screen == screenList || msg.plantID != m.detail.plant.ID {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNotSignedIn) {
				return m.fail(msg.err)
			}
			m.logger.Warn().Err(msg.err).Str("plant_id", msg.plantID).Msg("tip request failed")
			m.detail.tip = nil
			return m, nil
		}
		tip := msg.tip.Note
		m.detail.tip = &tip
		if !msg.tip.Generated {
			m.status = "Tip of the day"
			return m, nil
		}
		m.status = "New tip generated"
		m.busy = true
		return m, m.cmdLoadPlant(m.detail.plant.ID)
	case resultMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.result = resultView{title: msg.title, body: msg.body}
		m.resultBack = m.screen
		m.screen = screenResult
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Copied to clipboard"
		return m, nil
	case signedOutMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToForm(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			cmd := m.confirm.onYes
			m.confirm = nil
			m.busy = true
			return m, cmd
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenList:
		return m.updateList(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenCreate:
		return m.updateCreate(keyMsg)
	case screenNote:
		return m.updateNote(keyMsg)
	case screenPhoto:
		return m.updatePhoto(keyMsg)
	case screenResult:
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = m.resultBack
		case key.Matches(keyMsg, keys.copy):
			return m, m.cmdCopy(m.result.body)
		}
		return m, nil
	case screenAbout:
		if key.Matches(keyMsg, keys.esc) {
			m.screen = screenList
		}
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.move(-1)
		return m, nil
	case key.Matches(keyMsg, keys.down):
		m.list.move(1)
		return m, nil
	case keyMsg.String() == "v":
		m.screen = screenAbout
		return m, cmdServerVersion(m.ctx, m.plants)
	case key.Matches(keyMsg, keys.logout):
		m.confirm = &confirmModel{message: "Sign out", onYes: m.cmdSignOut()}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.reload):
		m.status = ""
		m.list.loading = true
		return m, m.cmdLoadPlants()
	case key.Matches(keyMsg, keys.newItem):
		m.create = newPlantFormModel(m.now())
		m.screen = screenCreate
		return m, nil
	}

	plant, ok := m.list.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter):
		m.busy = true
		return m, m.cmdLoadPlant(plant.ID)
	case key.Matches(keyMsg, keys.water):
		m.busy = true
		return m, m.cmdWater(plant.ID)
	}
	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		m.detail.tip = nil
		return m, nil
	case key.Matches(keyMsg, keys.up):
		m.detail.move(-1)
		return m, nil
	case key.Matches(keyMsg, keys.down):
		m.detail.move(1)
		return m, nil
	case key.Matches(keyMsg, keys.tab, keys.backtab):
		m.detail.toggleFocus()
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		text := m.detail.copyText()
		if text == "" {
			return m, nil
		}
		return m, m.cmdCopy(text)
	}

	if m.busy {
		return m, nil
	}

	plant := m.detail.plant
	switch {
	case key.Matches(keyMsg, keys.water):
		m.busy = true
		return m, m.cmdWater(plant.ID)
	case key.Matches(keyMsg, keys.archive):
		m.confirm = &confirmModel{message: "Archive \"" + plant.Species + "\"", onYes: m.cmdArchive(plant.ID)}
		return m, nil
	case key.Matches(keyMsg, keys.tip):
		m.busy = true
		return m, m.cmdDailyTip(plant.ID)
	case key.Matches(keyMsg, keys.regenerate):
		m.busy = true
		return m, m.cmdRegenerateTip(plant.ID)
	case key.Matches(keyMsg, keys.fertilizer):
		m.busy = true
		return m, m.cmdFertilizer(plant.Species)
	case key.Matches(keyMsg, keys.info):
		m.busy = true
		return m, m.cmdSpeciesInfo(plant.Species)
	case key.Matches(keyMsg, keys.note):
		m.note = newNoteFormModel()
		m.screen = screenNote
		return m, nil
	case key.Matches(keyMsg, keys.photo):
		m.photo = newPhotoFormModel()
		m.screen = screenPhoto
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		if note, ok := m.detail.selectedNote(); ok {
			m.confirm = &confirmModel{
				message: "Delete note \"" + fitText(firstLine(note.Content), 30) + "\"",
				onYes:   m.cmdDeleteNote(plant.ID, note.ID),
			}
		} else if photo, ok := m.detail.selectedPhoto(); ok {
			m.confirm = &confirmModel{
				message: "Delete photo from " + formatDate(photo.CreatedAt),
				onYes:   m.cmdDeletePhoto(plant.ID, photo.ID),
			}
		}
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) updateCreate(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.create.submitting {
			return m, nil
		}
		in, err := m.create.toInput()
		if err != nil {
			m.create.errMsg = err.Error()
			return m, nil
		}
		m.create.errMsg = ""
		m.create.submitting = true
		return m, m.cmdCreate(in)
	}

	var cmd tea.Cmd
	m.create, cmd = m.create.update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateNote(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDetail
		return m, nil
	case "ctrl+s":
		if m.note.submitting {
			return m, nil
		}
		content := m.note.content()
		if content == "" {
			m.note.errMsg = "Note is empty"
			return m, nil
		}
		m.note.errMsg = ""
		m.note.submitting = true
		return m, m.cmdAddNote(m.detail.plant.ID, content)
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updatePhoto(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDetail
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.photo.submitting {
			return m, nil
		}
		path := m.photo.path()
		if path == "" {
			m.photo.errMsg = "File path is required"
			return m, nil
		}
		m.photo.errMsg = ""
		m.photo.submitting = true
		return m, m.cmdAddPhoto(m.detail.plant.ID, path, m.photo.caption())
	}

	var cmd tea.Cmd
	m.photo, cmd = m.photo.update(keyMsg)
	return m, cmd
}

// forwardToForm passes non-key messages such as cursor blinks to the active
// form.
func (m mainLoopModel) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenCreate:
		m.create, cmd = m.create.update(msg)
	case screenNote:
		m.note, cmd = m.note.update(msg)
	case screenPhoto:
		m.photo, cmd = m.photo.update(msg)
	}
	return m, cmd
}

// fail shows err in an overlay. An expired session ends the loop so the
// caller can run the sign in flow again.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.busy = false
	if errors.Is(err, service.ErrNotSignedIn) {
		m.logout = true
		return m, tea.Quit
	}
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
	return m, nil
}

func (m *mainLoopModel) replaceInList(plant models.Plant) {
	for i := range m.list.plants {
		if m.list.plants[i].ID == plant.ID {
			plant.Notes = m.list.plants[i].Notes
			plant.Photos = m.list.plants[i].Photos
			m.list.plants[i] = plant
			return
		}
	}
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	title := "MY PLANTS"
	var body, hotKeys string

	switch m.screen {
	case screenList:
		body = m.list.View()
		hotKeys = "enter: open │ a: add │ w: water │ r: reload │ v: about │ L: sign out │ q: quit"
	case screenDetail:
		title = strings.ToUpper(m.detail.plant.Species)
		body = m.detail.View()
		hotKeys = "w: water │ t: tip │ g: new tip │ f: fertilizer │ i: species info │ n: note │ p: photo\n" +
			"  tab: notes/photos │ d: delete │ c: copy │ x: archive │ esc: back"
	case screenCreate:
		title = "NEW PLANT"
		body = m.create.View()
		hotKeys = "esc: cancel │ tab: next field │ enter: save"
	case screenNote:
		title = "NEW NOTE: " + strings.ToUpper(m.detail.plant.Species)
		body = m.note.View()
		hotKeys = "esc: cancel │ ctrl+s: save"
	case screenPhoto:
		title = "NEW PHOTO: " + strings.ToUpper(m.detail.plant.Species)
		body = m.photo.View()
		hotKeys = "esc: cancel │ tab: next field │ enter: upload"
	case screenResult:
		title = m.result.title
		body = m.result.body
		hotKeys = "c: copy │ esc: back"
	case screenAbout:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	if m.busy {
		title += "  " + m.spinner.View()
	}
	if m.status != "" && m.screen != screenResult {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	return renderPage(title, body, hotKeys)
}

func (m mainLoopModel) cmdLoadPlants() tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		list, offline, err := plants.Plants(ctx)
		return plantsLoadedMsg{plants: list, offline: offline, err: err}
	}
}

func (m mainLoopModel) cmdLoadPlant(plantID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		plant, err := plants.Plant(ctx, plantID)
		return plantLoadedMsg{plant: plant, err: err}
	}
}

func (m mainLoopModel) cmdCreate(in models.PlantInput) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		plant, err := plants.Create(ctx, in)
		return plantCreatedMsg{plant: plant, err: err}
	}
}

func (m mainLoopModel) cmdWater(plantID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		plant, err := plants.Water(ctx, plantID)
		return plantWateredMsg{plant: plant, err: err}
	}
}

func (m mainLoopModel) cmdArchive(plantID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		return plantArchivedMsg{err: plants.Archive(ctx, plantID)}
	}
}

func (m mainLoopModel) cmdAddNote(plantID, content string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		_, err := plants.AddNote(ctx, plantID, content)
		return detailChangedMsg{status: "Note added", err: err}
	}
}

func (m mainLoopModel) cmdDeleteNote(plantID, noteID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		return detailChangedMsg{status: "Note deleted", err: plants.DeleteNote(ctx, plantID, noteID)}
	}
}

func (m mainLoopModel) cmdAddPhoto(plantID, path, caption string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		_, err := plants.AddPhoto(ctx, plantID, path, caption)
		return detailChangedMsg{status: "Photo uploaded", err: err}
	}
}

func (m mainLoopModel) cmdDeletePhoto(plantID, photoID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		return detailChangedMsg{status: "Photo deleted", err: plants.DeletePhoto(ctx, plantID, photoID)}
	}
}

func (m mainLoopModel) cmdDailyTip(plantID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		tip, err := plants.DailyTip(ctx, plantID)
		return tipMsg{plantID: plantID, tip: tip, err: err}
	}
}

func (m mainLoopModel) cmdRegenerateTip(plantID string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		tip, err := plants.RegenerateTip(ctx, plantID)
		return tipMsg{plantID: plantID, tip: tip, err: err}
	}
}

func (m mainLoopModel) cmdFertilizer(species string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		res, err := plants.Fertilizer(ctx, species)
		return resultMsg{title: "FERTILIZER: " + strings.ToUpper(species), body: renderFertilizer(res), err: err}
	}
}

func (m mainLoopModel) cmdSpeciesInfo(species string) tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		res, err := plants.SpeciesInfo(ctx, species)
		return resultMsg{title: "ABOUT " + strings.ToUpper(species), body: renderSpeciesInfo(res), err: err}
	}
}

func (m mainLoopModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClip
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m mainLoopModel) cmdSignOut() tea.Cmd {
	ctx, plants := m.ctx, m.plants
	return func() tea.Msg {
		return signedOutMsg{err: plants.SignOut(ctx)}
	}
}
