package style

import (
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// File kind styles
var (
	SettingsStyle = lipgloss.NewStyle().
			Foreground(SettingsColor).
			Bold(true)

	KeymapStyle = lipgloss.NewStyle().
			Foreground(KeymapColor).
			Bold(true)

	ProjectStyle = lipgloss.NewStyle().
			Foreground(ProjectColor).
			Bold(true)
)

// KindStyle returns the style used to label a file kind
func KindStyle(kind types.FileKind) lipgloss.Style {
	switch kind {
	case types.KindSettings:
		return SettingsStyle
	case types.KindKeymap:
		return KeymapStyle
	case types.KindProject:
		return ProjectStyle
	default:
		return MutedStyle
	}
}
