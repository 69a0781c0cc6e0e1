package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/taches/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	sidebar, ok := m.screen.Region(ui.SidebarRegion)
	if !ok {
		return "Loading..."
	}
	detail, ok := m.screen.Region(ui.DetailRegion)
	if !ok {
		return "Loading..."
	}

	m.updateFooterContext(detail)
	ctx := ui.GetViewContext()

	var inputLine string
	if m.inputMode {
		inputLine = ui.InputPromptStyle.Render("+ ") + m.input.View()
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebar.View(ui.PanelOptions{
			Width:   ctx.SidebarWidth,
			Height:  ctx.ContentHeight,
			Focused: m.focus == FocusSidebar,
		}),
		detail.View(ui.PanelOptions{
			Width:   ctx.DetailWidth,
			Height:  ctx.ContentHeight,
			Focused: m.focus == FocusDetail,
			Footer:  inputLine,
		}),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext(detail *ui.Region) {
	m.footer.SetContext(m.focus == FocusSidebar, detail.Description().Len() > 0, m.inputMode)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	// Prompt "+ " plus the panel border and padding
	m.input.SetWidth(max(ctx.InnerWidth(ctx.DetailWidth)-4, 1))
}
