package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/taches/internal/view"
)

// Region is a named render target inside a Screen. It holds the last
// description rendered into it plus the presentation state the description
// does not carry: cursor position and scroll offset.
type Region struct {
	name     string
	desc     view.Description
	rendered bool
	renders  int

	cursor    int
	cursorKey string // Key of the row under the cursor, re-found after each render

	scrollOffset int
	visibleRows  int // Rows shown by the last View call
}

func newRegion(name string) *Region {
	return &Region{name: name}
}

// Name returns the region name
func (r *Region) Name() string {
	return r.name
}

// Description returns the last rendered description
func (r *Region) Description() view.Description {
	return r.desc
}

// render replaces the region content and reconciles the cursor. Within the
// same scope a row whose key survives keeps the cursor, otherwise the cursor
// is clamped. A new scope starts over at the selected row.
func (r *Region) render(d view.Description) {
	first := !r.rendered
	sameScope := r.rendered && r.desc.Scope() == d.Scope()

	r.desc = d
	r.rendered = true
	r.renders++

	if d.Len() == 0 {
		r.cursor = 0
		r.cursorKey = ""
		return
	}

	switch idx := d.IndexOf(r.cursorKey); {
	case sameScope && r.cursorKey != "" && idx >= 0:
		r.cursor = idx
	case first || !sameScope:
		r.cursor = 0
		for i := 0; i < d.Len(); i++ {
			if d.Row(i).Selected {
				r.cursor = i
				break
			}
		}
		r.scrollOffset = 0
	default:
		r.clampCursor()
	}
	r.cursorKey = d.Row(r.cursor).Key
}

func (r *Region) clampCursor() {
	if r.cursor >= r.desc.Len() {
		r.cursor = r.desc.Len() - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

// Cursor returns the index of the row under the cursor
func (r *Region) Cursor() int {
	return r.cursor
}

// CursorRow returns the row under the cursor, if any
func (r *Region) CursorRow() (view.Row, bool) {
	if r.cursor < 0 || r.cursor >= r.desc.Len() {
		return view.Row{}, false
	}
	return r.desc.Row(r.cursor), true
}

// SetCursor moves the cursor to row i, clamped to the rows present
func (r *Region) SetCursor(i int) {
	if r.desc.Len() == 0 {
		return
	}
	r.cursor = i
	r.clampCursor()
	r.cursorKey = r.desc.Row(r.cursor).Key
}

// MoveCursor moves the cursor by delta rows
func (r *Region) MoveCursor(delta int) {
	r.SetCursor(r.cursor + delta)
}

// Activate invokes the callback of the row under the cursor. It is a no-op
// when the region has no rows.
func (r *Region) Activate() error {
	row, ok := r.CursorRow()
	if !ok {
		return nil
	}
	return row.Activate()
}

// ActivateAt moves the cursor to row i and activates it
func (r *Region) ActivateAt(i int) error {
	if i < 0 || i >= r.desc.Len() {
		return nil
	}
	r.SetCursor(i)
	return r.Activate()
}

// RowAt maps a line inside the panel (0 is the top border) to a row index
// using the scroll position of the last View call.
func (r *Region) RowAt(y int) (int, bool) {
	line := y - 1 - TitleHeight
	if line < 0 || line >= r.visibleRows {
		return 0, false
	}
	idx := line + r.scrollOffset
	if idx >= r.desc.Len() {
		return 0, false
	}
	return idx, true
}

// PanelOptions controls how a region is drawn
type PanelOptions struct {
	Width   int
	Height  int
	Focused bool
	Footer  string // Optional last line, e.g. an input field
}

// View draws the region as a bordered panel. In lipgloss v2 Width/Height
// include borders, so the full panel size is passed through.
func (r *Region) View(opts PanelOptions) string {
	vc := GetViewContext()
	style := PanelStyle
	if opts.Focused {
		style = PanelFocusedStyle
	}

	innerWidth := vc.InnerWidth(opts.Width)
	innerHeight := vc.InnerHeight(opts.Height)
	bodyHeight := innerHeight - TitleHeight
	if opts.Footer != "" {
		bodyHeight--
	}
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	lines := []string{PanelTitleStyle.Render(ansi.Truncate(r.desc.Title(), max(innerWidth-2, 0), "…"))}

	if r.desc.Len() == 0 {
		r.visibleRows = 0
		if msg := r.desc.EmptyMessage(); msg != "" && bodyHeight > 0 {
			lines = append(lines, EmptyStateStyle.Width(innerWidth).Render(ansi.Truncate(msg, max(innerWidth-2, 0), "…")))
		}
	} else {
		r.ensureVisible(bodyHeight)
		end := min(r.scrollOffset+bodyHeight, r.desc.Len())
		r.visibleRows = end - r.scrollOffset
		markerWidth := r.markerWidth()
		for i := r.scrollOffset; i < end; i++ {
			lines = append(lines, r.renderRow(r.desc.Row(i), innerWidth, markerWidth, opts.Focused && i == r.cursor))
		}
	}

	if opts.Footer != "" {
		for len(lines) < innerHeight-1 {
			lines = append(lines, "")
		}
		lines = append(lines, opts.Footer)
	}

	return style.Width(opts.Width).Height(opts.Height).Render(strings.Join(lines, "\n"))
}

// ensureVisible adjusts the scroll offset so the cursor row is on screen
func (r *Region) ensureVisible(height int) {
	if height <= 0 {
		r.scrollOffset = r.cursor
		return
	}
	if r.cursor < r.scrollOffset {
		r.scrollOffset = r.cursor
	} else if r.cursor >= r.scrollOffset+height {
		r.scrollOffset = r.cursor - height + 1
	}
	maxScroll := max(r.desc.Len()-height, 0)
	if r.scrollOffset > maxScroll {
		r.scrollOffset = maxScroll
	}
	if r.scrollOffset < 0 {
		r.scrollOffset = 0
	}
}

func (r *Region) markerWidth() int {
	w := 0
	for i := 0; i < r.desc.Len(); i++ {
		w = max(w, lipgloss.Width(r.desc.Row(i).Marker))
	}
	return w
}

// rowPrefix pads the marker so labels line up, and separates it from the label
func rowPrefix(marker string, width int) string {
	if width == 0 {
		return ""
	}
	prefix := marker + strings.Repeat(" ", width-lipgloss.Width(marker))
	if !strings.HasSuffix(prefix, " ") {
		prefix += " "
	}
	return prefix
}

func (r *Region) renderRow(row view.Row, innerWidth, markerWidth int, atCursor bool) string {
	lineStyle := RowStyle
	switch {
	case atCursor:
		lineStyle = RowCursorStyle
	case row.Selected:
		lineStyle = RowSelectedStyle
	}

	contentWidth := max(innerWidth-2, 0) // Padding(0, 1)
	prefix := rowPrefix(row.Marker, markerWidth)
	badgeWidth := lipgloss.Width(row.Badge)

	labelWidth := contentWidth - lipgloss.Width(prefix)
	if badgeWidth > 0 {
		labelWidth -= badgeWidth + 1
	}
	label := ansi.Truncate(row.Label, max(labelWidth, 0), "…")
	gap := max(contentWidth-lipgloss.Width(prefix)-lipgloss.Width(label)-badgeWidth, 0)

	if row.Done && !atCursor {
		label = RowDoneStyle.Render(label)
	}
	badge := row.Badge
	if badge != "" && !atCursor {
		badge = BadgeStyle.Render(badge)
	}

	return lineStyle.Width(innerWidth).Render(prefix + label + strings.Repeat(" ", gap) + badge)
}
