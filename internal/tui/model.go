// Package tui renders an interactive preview of the style preset table for
// SSH sessions.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"styleboard/internal/style"
)

// Model is the preset browser: a selectable list of presets on the left and a
// preview of the selected preset on the right.
type Model struct {
	presets      []style.Preset
	index        int
	width        int
	height       int
	showResolved bool
	preview      viewport.Model
	quitting     bool
}

// New constructs the browser over a snapshot of the style table. initial
// preselects a preset by name; unknown names select the first row.
func New(presets []style.Preset, initial string, width, height int) Model {
	index := 0
	for i, p := range presets {
		if p.Name == initial {
			index = i
			break
		}
	}

	m := Model{
		presets:      presets,
		index:        index,
		width:        width,
		height:       height,
		showResolved: true,
		preview:      viewport.New(max(width/2, 20), max(height-4, 5)),
	}
	m.refreshPreview()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = max(m.width/2, 20)
		m.preview.Height = max(m.height-4, 5)
		m.refreshPreview()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.index > 0 {
				m.index--
				m.refreshPreview()
			}
		case "down", "j":
			if m.index < len(m.presets)-1 {
				m.index++
				m.refreshPreview()
			}
		case "r":
			m.showResolved = !m.showResolved
			m.refreshPreview()
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// Selected returns the preset under the cursor.
func (m Model) Selected() (style.Preset, bool) {
	if len(m.presets) == 0 {
		return style.Preset{}, false
	}
	return m.presets[m.index], true
}

func (m *Model) refreshPreview() {
	preset, ok := m.Selected()
	if !ok {
		m.preview.SetContent("no presets seeded")
		return
	}
	m.preview.SetContent(renderPreview(preset, m.showResolved))
}
