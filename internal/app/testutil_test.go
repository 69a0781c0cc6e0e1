package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/taches/internal/config"
	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/keys"
	"github.com/zhubert/taches/internal/tasks"
	"github.com/zhubert/taches/internal/view"
)

// recordingSurface records every Reset and Render call
type recordingSurface struct {
	resets  [][]string
	renders []renderCall
	regions map[string]bool
	last    map[string]view.Description
}

type renderCall struct {
	region string
	desc   view.Description
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		regions: make(map[string]bool),
		last:    make(map[string]view.Description),
	}
}

func (s *recordingSurface) Reset(regions ...string) error {
	s.resets = append(s.resets, append([]string(nil), regions...))
	s.regions = make(map[string]bool, len(regions))
	for _, r := range regions {
		s.regions[r] = true
	}
	s.last = make(map[string]view.Description)
	return nil
}

func (s *recordingSurface) Render(region string, d view.Description) error {
	if !s.regions[region] {
		return perrors.RegionNotFound(region)
	}
	s.renders = append(s.renders, renderCall{region, d})
	s.last[region] = d
	return nil
}

// testConfig creates a config that never touches disk
func testConfig() *config.Config {
	return config.New("")
}

// notifierSpy records list-cleared notifications
type notifierSpy struct {
	lists []string
	err   error
}

func (n *notifierSpy) notify(listName string) error {
	n.lists = append(n.lists, listName)
	return n.err
}

// clipboardSpy records copied text
type clipboardSpy struct {
	text []string
	err  error
}

func (c *clipboardSpy) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = append(c.text, s)
	return nil
}

// testModel creates a loaded Model with the default seed and a sized terminal
func testModel(cfg *config.Config, opts ...Option) *Model {
	opts = append([]Option{
		WithClipboard((&clipboardSpy{}).write),
		WithNotifier((&notifierSpy{}).notify),
	}, opts...)
	m := New(cfg, tasks.Default(), opts...)
	m = setSize(m, 100, 30)
	m = runCmd(m, m.Init())
	return m
}

// runCmd executes cmd synchronously and feeds its message back to the model.
// tea.Quit and nil commands are not fed back.
func runCmd(m *Model, cmd tea.Cmd) *Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return m
	}
	result, _ := m.Update(msg)
	return result.(*Model)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command
func sendKeyCmd(m *Model, key string) (*Model, tea.Cmd) {
	result, cmd := m.Update(keyPress(key))
	return result.(*Model), cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// leftClick creates a left mouse click at the given screen coordinates
func leftClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}
