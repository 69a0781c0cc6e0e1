package ui

import (
	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
	"github.com/zhubert/taches/internal/view"
)

// Screen is the root attachment point of the interactive UI. It owns a set
// of named regions that descriptions are rendered into.
type Screen struct {
	id      string
	regions map[string]*Region
	order   []string
	resets  int
}

// NewScreen creates a screen with no regions mounted
func NewScreen(id string) *Screen {
	return &Screen{
		id:      id,
		regions: make(map[string]*Region),
	}
}

// ID returns the attachment point identifier
func (s *Screen) ID() string {
	return s.id
}

// Reset clears the screen and mounts one empty region per name. Names are
// checked before anything is changed, so a failed Reset keeps the old layout.
func (s *Screen) Reset(names ...string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			return perrors.InvalidRegion(name)
		}
		seen[name] = true
	}

	s.regions = make(map[string]*Region, len(names))
	s.order = append([]string(nil), names...)
	for _, name := range names {
		s.regions[name] = newRegion(name)
	}
	s.resets++
	logger.WithComponent("ui").Debug("screen reset", "id", s.id, "regions", names)
	return nil
}

// Render replaces the content of the named region
func (s *Screen) Render(name string, d view.Description) error {
	r, ok := s.regions[name]
	if !ok {
		return perrors.RegionNotFound(name)
	}
	r.render(d)
	return nil
}

// Region returns the named region
func (s *Screen) Region(name string) (*Region, bool) {
	r, ok := s.regions[name]
	return r, ok
}

// Names returns region names in mount order
func (s *Screen) Names() []string {
	return append([]string(nil), s.order...)
}

