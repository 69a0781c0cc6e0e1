package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often expiry is checked
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient message replacing the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is visible
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom bar with context-aware key bindings
type Footer struct {
	width          int
	sidebarFocused bool // Whether the sidebar has focus
	hasTasks       bool // Whether the selected list has tasks
	inputMode      bool // Whether the add-task input is open
	flashMessage   *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{sidebarFocused: true}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sidebarFocused, hasTasks, inputMode bool) {
	f.sidebarFocused = sidebarFocused
	f.hasTasks = hasTasks
	f.inputMode = inputMode
}

// SetFlash shows text for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the key bindings for the current context
func (f *Footer) Bindings() []KeyBinding {
	switch {
	case f.inputMode:
		return []KeyBinding{
			{Key: "enter", Desc: "add task"},
			{Key: "esc", Desc: "cancel"},
		}
	case f.sidebarFocused:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open list"},
			{Key: "tab", Desc: "tasks"},
			{Key: "q", Desc: "quit"},
		}
	default:
		bindings := []KeyBinding{{Key: "↑/↓", Desc: "navigate"}}
		if f.hasTasks {
			bindings = append(bindings,
				KeyBinding{Key: "space", Desc: "toggle"},
				KeyBinding{Key: "y", Desc: "copy"},
			)
		}
		return append(bindings,
			KeyBinding{Key: "a", Desc: "add"},
			KeyBinding{Key: "tab", Desc: "lists"},
			KeyBinding{Key: "q", Desc: "quit"},
		)
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(renderFlash(f.flashMessage))
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	return FooterStyle.Width(f.width).Render(strings.Join(parts, sep))
}

func renderFlash(msg *FlashMessage) string {
	switch msg.Type {
	case FlashError:
		return FlashErrorStyle.Render("✕ " + msg.Text)
	case FlashWarning:
		return FlashWarningStyle.Render("⚠ " + msg.Text)
	case FlashSuccess:
		return FlashSuccessStyle.Render("✓ " + msg.Text)
	default:
		return FlashInfoStyle.Render("ℹ " + msg.Text)
	}
}
