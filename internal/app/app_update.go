package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/taches/internal/keys"
	"github.com/zhubert/taches/internal/logger"
	"github.com/zhubert/taches/internal/ui"
)

// Update handles messages. Every controller transition happens here, on the
// Bubble Tea loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case loadMsg:
		if err := m.controller.Load(msg.listUID); err != nil {
			return m, m.fail(err)
		}
		m.syncHeader()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case notificationSentMsg:
		if msg.err != nil {
			logger.WithComponent("app").Warn("list cleared notification failed", "list", msg.listName, "error", msg.err)
		}
		return m, nil
	}

	// Cursor blink and other input internals
	if m.inputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == keys.CtrlC {
		return tea.Quit
	}
	if m.inputMode {
		return m.handleInputKey(msg)
	}

	switch key {
	case "q":
		return tea.Quit

	case keys.Tab, keys.ShiftTab:
		m.toggleFocus()
		return nil

	case keys.Up, "k":
		m.moveCursor(-1)
	case keys.Down, "j":
		m.moveCursor(1)
	case keys.PgUp:
		m.moveCursor(-m.pageSize())
	case keys.PgDown:
		m.moveCursor(m.pageSize())
	case keys.Home:
		if r, ok := m.focusedRegion(); ok {
			r.SetCursor(0)
		}
	case keys.End:
		if r, ok := m.focusedRegion(); ok {
			r.SetCursor(r.Description().Len() - 1)
		}

	case keys.Enter, keys.Space:
		if r, ok := m.focusedRegion(); ok {
			return m.runAction(r.Activate)
		}

	case "a":
		return m.openInput()

	case "y":
		return m.copyFocusedTask()
	}
	return nil
}

// handleInputKey handles keys while the add-task input is open
func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.closeInput()
		return nil

	case keys.Enter:
		name := strings.TrimSpace(m.input.Value())
		m.closeInput()
		if name == "" {
			return m.ShowFlashWarning("Task name is empty")
		}
		cmd := m.runAction(func() error { return m.controller.AddTask(name) })
		if m.err == nil {
			if r, ok := m.screen.Region(ui.DetailRegion); ok {
				r.SetCursor(r.Description().Len() - 1)
			}
		}
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusDetail
	} else {
		m.focus = FocusSidebar
	}
	logger.WithComponent("app").Debug("focus changed", "focus", m.focus.String())
}

func (m *Model) moveCursor(delta int) {
	if r, ok := m.focusedRegion(); ok {
		r.MoveCursor(delta)
	}
}

// pageSize is the number of rows visible in a pane
func (m *Model) pageSize() int {
	ctx := ui.GetViewContext()
	return max(ctx.InnerHeight(ctx.ContentHeight)-ui.TitleHeight, 1)
}

// openInput shows the add-task input in the detail pane
func (m *Model) openInput() tea.Cmd {
	if m.controller.State() != StateLoaded {
		return nil
	}
	m.focus = FocusDetail
	m.inputMode = true
	m.footer.ClearFlash()
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputMode = false
	m.input.Blur()
	m.input.Reset()
}

// copyFocusedTask copies the name of the task under the detail cursor
func (m *Model) copyFocusedTask() tea.Cmd {
	if m.focus != FocusDetail {
		return nil
	}
	r, ok := m.screen.Region(ui.DetailRegion)
	if !ok {
		return nil
	}
	row, ok := r.CursorRow()
	if !ok {
		return nil
	}
	if err := m.copyText(row.Label); err != nil {
		logger.WithComponent("app").Warn("copy failed", "error", err)
		return m.ShowFlashWarning("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Copied task name")
}
