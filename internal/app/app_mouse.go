package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/taches/internal/ui"
)

// handleMouseClick activates the row under a left click. Clicking a pane
// also focuses it.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft || m.inputMode {
		return nil
	}

	ctx := ui.GetViewContext()
	y := msg.Y - ui.HeaderHeight
	if y < 0 || y >= ctx.ContentHeight {
		return nil
	}

	name, focus := ui.SidebarRegion, FocusSidebar
	if msg.X >= ctx.SidebarWidth {
		name, focus = ui.DetailRegion, FocusDetail
	}
	r, ok := m.screen.Region(name)
	if !ok {
		return nil
	}
	m.focus = focus

	idx, ok := r.RowAt(y)
	if !ok {
		return nil
	}
	return m.runAction(func() error { return r.ActivateAt(idx) })
}
