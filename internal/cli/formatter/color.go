package formatter

import (
	"fmt"
	"strings"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorCursor = lipgloss.Color("#3c3836")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleCursor = lipgloss.NewStyle().Background(ColorCursor).Bold(true)
	StyleToday  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// StatusStyle returns the style used for bars and labels of the given status.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusDone:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleYellow
	case domain.StatusTesting:
		return StylePurple
	case domain.StatusTodo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusLabel renders a status as an upper-case label, e.g. "IN PROGRESS".
func StatusLabel(s domain.Status) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// TypeIcon returns a one-rune marker for an issue type.
func TypeIcon(t domain.IssueType) string {
	switch t {
	case domain.TypeEpic:
		return "◆"
	case domain.TypeStory:
		return "●"
	case domain.TypeTask:
		return "■"
	case domain.TypeBug:
		return "✖"
	case domain.TypeSubtask:
		return "·"
	default:
		return " "
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
