package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"closet/internal/closet"
)

// AppModel is the root model. It owns quitting and delegates everything
// else to the closet view.
type AppModel struct {
	Manager *closet.Manager
	Closet  *ClosetView
	Quit    key.Binding
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Closet.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.Quit) {
		a.Closet.Close()
		return a, tea.Quit
	}
	v, cmd := a.Closet.Update(msg)
	if cv, ok := v.(*ClosetView); ok {
		a.Closet = cv
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Closet.View()
}

// NewAppModel creates the root application model around m. A nil m gets a
// fresh manager.
func NewAppModel(m *closet.Manager) *AppModel {
	if m == nil {
		m = closet.NewManager()
	}
	cv := NewClosetView(m)
	return &AppModel{
		Manager: m,
		Closet:  cv,
		Quit:    cv.Keys.Quit,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
