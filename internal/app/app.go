package app

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/taches/internal/clipboard"
	"github.com/zhubert/taches/internal/config"
	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
	"github.com/zhubert/taches/internal/notification"
	"github.com/zhubert/taches/internal/tasks"
	"github.com/zhubert/taches/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusDetail
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "Sidebar"
	case FocusDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	repo    *tasks.Repository

	screen     *ui.Screen
	controller *Controller

	header *ui.Header
	footer *ui.Footer
	input  textinput.Model

	width     int
	height    int
	focus     Focus
	inputMode bool

	// Fatal controller error; the program quits once it is set
	err error

	copyText func(string) error
	notify   func(listName string) error
}

// loadMsg asks the model to load the initial list
type loadMsg struct {
	listUID string
}

// notificationSentMsg reports the outcome of a list-cleared notification
type notificationSentMsg struct {
	listName string
	err      error
}

// Option configures a Model
type Option func(*Model)

// WithVersion sets the version recorded in logs
func WithVersion(version string) Option {
	return func(m *Model) { m.version = version }
}

// WithClipboard replaces the clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyText = fn }
}

// WithNotifier replaces the list-cleared notifier
func WithNotifier(fn func(listName string) error) Option {
	return func(m *Model) { m.notify = fn }
}

// New creates the app model. Nothing is rendered until Init's load message
// is processed.
func New(cfg *config.Config, repo *tasks.Repository, opts ...Option) *Model {
	// Load saved theme from config, or keep the default
	if name := cfg.GetTheme(); name != "" {
		if ui.IsTheme(name) {
			ui.SetThemeByName(name)
		} else {
			logger.WithComponent("app").Warn("unknown theme, using default", "theme", name)
		}
	}

	input := textinput.New()
	input.Placeholder = "new task"
	input.CharLimit = ui.TaskNameCharLimit
	input.SetWidth(ui.DefaultTextWidth)

	screen := ui.NewScreen(ui.RootID)
	m := &Model{
		config:     cfg,
		repo:       repo,
		screen:     screen,
		controller: NewController(repo, screen),
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		input:      input,
		focus:      FocusSidebar,
		copyText:   clipboard.WriteText,
		notify:     notification.ListCleared,
	}
	for _, opt := range opts {
		opt(m)
	}
	logger.WithComponent("app").Debug("model created", "root", m.screen.ID(), "version", m.version, "initial_list", cfg.GetInitialList())
	return m
}

// Init loads the configured initial list
func (m *Model) Init() tea.Cmd {
	uid := m.config.GetInitialList()
	return func() tea.Msg {
		return loadMsg{listUID: uid}
	}
}

// Err returns the fatal error that stopped the program, if any
func (m *Model) Err() error {
	return m.err
}

// Controller returns the controller driving the screen
func (m *Model) Controller() *Controller {
	return m.controller
}

// Screen returns the root attachment point
func (m *Model) Screen() *ui.Screen {
	return m.screen
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// InputMode reports whether the add-task input is open
func (m *Model) InputMode() bool {
	return m.inputMode
}

// focusedRegion returns the region keyboard navigation applies to
func (m *Model) focusedRegion() (*ui.Region, bool) {
	if m.focus == FocusDetail {
		return m.screen.Region(ui.DetailRegion)
	}
	return m.screen.Region(ui.SidebarRegion)
}

// fail records a fatal error and stops the program
func (m *Model) fail(err error) tea.Cmd {
	logger.WithComponent("app").Error("fatal controller error", "kind", perrors.GetKind(err), "error", err)
	m.err = err
	return tea.Quit
}

// syncHeader shows the selected list and its pending count
func (m *Model) syncHeader() {
	if l, ok := m.controller.SelectedList(); ok {
		m.header.SetList(l.Name, tasks.PendingCount(l))
	}
}

// runAction runs a row action and sends a notification when it cleared the
// selected list.
func (m *Model) runAction(action func() error) tea.Cmd {
	before, hadBefore := m.controller.SelectedList()

	if err := action(); err != nil {
		return m.fail(err)
	}
	m.syncHeader()

	after, ok := m.controller.SelectedList()
	if !ok || !hadBefore || after.UID != before.UID {
		return nil
	}
	if tasks.PendingCount(before) > 0 && tasks.PendingCount(after) == 0 && m.config.GetNotificationsEnabled() {
		return m.notifyCleared(after.Name)
	}
	return nil
}

// notifyCleared sends the notification off the update loop
func (m *Model) notifyCleared(listName string) tea.Cmd {
	notify := m.notify
	return func() tea.Msg {
		return notificationSentMsg{listName: listName, err: notify(listName)}
	}
}
