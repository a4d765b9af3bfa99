package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for CLI output
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeLab = Theme{
		Name:      "lab",
		Primary:   lipgloss.Color("#4fc3f7"),
		Secondary: lipgloss.Color("#81c784"),
		Accent:    lipgloss.Color("#ffb74d"),
		Text:      lipgloss.Color("#eceff1"),
		Muted:     lipgloss.Color("#78909c"),
		Success:   lipgloss.Color("#a5d6a7"),
		Error:     lipgloss.Color("#e57373"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemePlain = Theme{Name: "plain"}

	Themes = []Theme{ThemeCyberpunk, ThemeLab, ThemeOcean, ThemePlain}
)

// GetTheme returns a theme by name, or cyberpunk when unknown
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
