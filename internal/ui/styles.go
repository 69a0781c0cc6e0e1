package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, regenerated from the current theme.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Row styles
var (
	RowStyle         lipgloss.Style
	RowCursorStyle   lipgloss.Style // Row under the cursor in the focused panel
	RowSelectedStyle lipgloss.Style // Selected list in the sidebar
	RowDoneStyle     lipgloss.Style
	BadgeStyle       lipgloss.Style
	EmptyStateStyle  lipgloss.Style
	InputPromptStyle lipgloss.Style
)

// Flash styles
var (
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashErrorStyle   lipgloss.Style
)

func init() {
	regenerateStyles()
}

func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	RowCursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	RowDoneStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Strikethrough(true)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Padding(0, 1)

	InputPromptStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
}
