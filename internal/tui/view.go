package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"styleboard/internal/palette"
	"styleboard/internal/style"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#268bd2"))
	subtleStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	list.WriteString(titleStyle.Render("Style Presets"))
	list.WriteString("\n\n")
	for i, preset := range m.presets {
		line := "  " + preset.Name
		if i == m.index {
			line = selectedStyle.Render("> " + preset.Name)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		paneStyle.Render(list.String()),
		paneStyle.Render(m.preview.View()),
	)

	help := subtleStyle.Render("j/k select • r toggle roles/hex • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, panes, help)
}

func renderPreview(p style.Preset, showResolved bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "font     %s %d\n", p.FontFace, p.FontSize)
	fmt.Fprintf(&b, "spacing  %d\n\n", p.Spacing)

	rows := []struct {
		label string
		role  string
	}{
		{"text", p.TextColor},
		{"bg inactive", p.BGInactive},
		{"bg active", p.BGActive},
		{"fg inactive", p.FGInactive},
		{"fg active", p.FGActive},
	}

	for _, row := range rows {
		if !showResolved {
			fmt.Fprintf(&b, "%-12s %s\n", row.label, row.role)
			continue
		}
		hex, err := palette.Resolve(row.role)
		if err != nil {
			fmt.Fprintf(&b, "%-12s %s (unresolved)\n", row.label, row.role)
			continue
		}
		fmt.Fprintf(&b, "%-12s %s\n", row.label, swatch(hex))
	}

	return b.String()
}

// swatch renders a hex value over its own color, picking a readable label
// color for dark and light backgrounds.
func swatch(hex string) string {
	fg := "#002b36"
	if palette.IsDark(hex) {
		fg = "#fdf6e3"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(hex)
}
