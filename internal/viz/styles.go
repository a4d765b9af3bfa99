package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles derived from a theme
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Operator lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
}

// NewStyles builds styles for t. The plain theme renders without color.
func NewStyles(t Theme) Styles {
	s := Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true),
		Label:    lipgloss.NewStyle(),
		Value:    lipgloss.NewStyle().Bold(true),
		Operator: lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Italic(true),
		Error:    lipgloss.NewStyle().Bold(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if t.Name == ThemePlain.Name {
		return s
	}

	s.Title = s.Title.Foreground(t.Secondary)
	s.Header = s.Header.Foreground(t.Text).BorderForeground(t.Muted)
	s.Label = s.Label.Foreground(t.Text)
	s.Value = s.Value.Foreground(t.Success)
	s.Operator = s.Operator.Foreground(t.Accent)
	s.Muted = s.Muted.Foreground(t.Muted)
	s.Error = s.Error.Foreground(t.Error)
	s.Panel = s.Panel.BorderForeground(t.Primary)
	return s
}

// Separator renders a muted rule of the given width
func (s Styles) Separator(width int) string {
	if width < 7 {
		return s.Muted.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	return s.Muted.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
