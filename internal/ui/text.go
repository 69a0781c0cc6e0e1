package ui

import (
	"fmt"
	"io"
	"strings"

	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/view"
)

// TextSurface renders descriptions as plain text. It backs the print command
// and accepts the same Reset/Render calls as Screen.
type TextSurface struct {
	order []string
	descs map[string]view.Description
	set   map[string]bool
}

// NewTextSurface creates an empty text surface
func NewTextSurface() *TextSurface {
	return &TextSurface{
		descs: make(map[string]view.Description),
		set:   make(map[string]bool),
	}
}

// Reset mounts the given regions, dropping prior content
func (t *TextSurface) Reset(names ...string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			return perrors.InvalidRegion(name)
		}
		seen[name] = true
	}
	t.order = append([]string(nil), names...)
	t.descs = make(map[string]view.Description, len(names))
	t.set = seen
	return nil
}

// Render stores d as the content of region name
func (t *TextSurface) Render(name string, d view.Description) error {
	if !t.set[name] {
		return perrors.RegionNotFound(name)
	}
	t.descs[name] = d
	return nil
}

// String returns every rendered region in mount order, separated by a blank line
func (t *TextSurface) String() string {
	var parts []string
	for _, name := range t.order {
		d, ok := t.descs[name]
		if !ok {
			continue
		}
		parts = append(parts, FormatPlain(d))
	}
	return strings.Join(parts, "\n")
}

// WriteTo writes String() to w
func (t *TextSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// FormatPlain renders a description without styling:
//
//	== Lists ==
//	- Inbox (1)
//	  Other
func FormatPlain(d view.Description) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", d.Title())

	if d.Len() == 0 {
		if msg := d.EmptyMessage(); msg != "" {
			b.WriteString(msg)
			b.WriteString("\n")
		}
		return b.String()
	}

	width := 0
	for _, row := range d.Rows() {
		width = max(width, len([]rune(row.Marker)))
	}
	for _, row := range d.Rows() {
		line := rowPrefix(row.Marker, width) + row.Label
		if row.Badge != "" {
			line += " (" + row.Badge + ")"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
