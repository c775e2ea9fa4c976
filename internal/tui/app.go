// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// RootModel routes the sign in pages. It owns ctrl+c and the about window,
// switches pages on [NavigateTo] and quits with the user id once a login or
// registration succeeds. Everything else goes to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	resultID   uuid.UUID
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			return r.finish(msg.UserID)
		}
	case RegisterResult:
		if msg.Err == nil {
			return r.finish(msg.UserID)
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// handleKey reports whether the key was consumed by the router.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.abort):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.about) && r.isMenuPage():
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}

	// the about window swallows every other key
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	case r.current == nil:
		return renderPage("Pilot Logbook", "", "")
	default:
		return appStyle.Render(r.current.View())
	}
}

func (r RootModel) finish(userID uuid.UUID) (tea.Model, tea.Cmd) {
	setSessionUserID(userID)
	r.resultID = userID
	return r, tea.Quit
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
