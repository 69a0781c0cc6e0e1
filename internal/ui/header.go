package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// headerTitle is the application title at the left of the header
const headerTitle = " Tâches"

// Header represents the top header bar
type Header struct {
	width    int
	listName string
	pending  int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetList sets the selected list shown at the right of the header
func (h *Header) SetList(name string, pending int) {
	h.listName = name
	h.pending = pending
}

// Content returns the unstyled header text padded to the header width.
func (h *Header) Content() string {
	var rightText string
	if h.listName != "" {
		rightText = h.listName
		if h.pending > 0 {
			rightText += fmt.Sprintf(" (%d)", h.pending)
		}
		rightText += " "
	}

	// Title contains a non-ASCII rune, so pad by display width, not bytes
	paddingLen := h.width - runewidth.StringWidth(headerTitle) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}
	return headerTitle + strings.Repeat(" ", paddingLen) + rightText
}

// View renders the header
func (h *Header) View() string {
	return h.renderGradient(h.Content())
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content on a background fading from the theme's
// primary color into its background color.
func (h *Header) renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	titleLen := len([]rune(headerTitle))

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < titleLen)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
