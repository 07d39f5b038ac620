package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/soltrack/soltrack/internal/mastery"
)

// Color palette for CLI output. Readable on dark and light terminals.
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	Error   = lipgloss.Color("#F43F5E") // Rose
	Info    = lipgloss.Color("#14B8A6") // Teal
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// levelStyles colors a mastery level from rose (beginning) through
// green (advanced).
var levelStyles = map[mastery.Level]lipgloss.Style{
	mastery.LevelBeginning:  lipgloss.NewStyle().Foreground(Error),
	mastery.LevelDeveloping: lipgloss.NewStyle().Foreground(Warning),
	mastery.LevelProficient: lipgloss.NewStyle().Foreground(Info),
	mastery.LevelAdvanced:   lipgloss.NewStyle().Foreground(Success).Bold(true),
}

// Level renders a mastery level with its color.
func Level(l mastery.Level) string {
	if st, ok := levelStyles[l]; ok {
		return st.Render(string(l))
	}
	return string(l)
}

// Bar renders a fixed-width progress bar for a 0..1 value.
func Bar(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(v*float64(width) + 0.5)
	var b []rune
	for i := 0; i < width; i++ {
		if i < filled {
			b = append(b, '█')
		} else {
			b = append(b, '░')
		}
	}
	return string(b)
}
