// Package view builds declarative descriptions of the two panes.
//
// Builders are pure: they take a snapshot plus callbacks and return a
// Description. They keep no state and never touch the repository or the
// screen. Only a render capability turns a Description into output.
package view

// Presentation strings shared by the builders and the renderers.
const (
	SidebarTitle     = "Lists"
	EmptyListMessage = "No task so far, add one?"
	SelectedMarker   = "- "
	DoneMarker       = "[x]"
	PendingMarker    = "[ ]"
)

// Kind identifies which builder produced a description.
type Kind int

const (
	KindSidebar Kind = iota
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindSidebar:
		return "sidebar"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Row is a single activatable line of a description.
type Row struct {
	Key      string // Stable identity across renders (list or task UID)
	Marker   string // Leading marker: selection marker or toggle state
	Label    string
	Badge    string // Trailing text; empty when there is nothing to show
	Selected bool
	Done     bool

	action func() error
}

// Activate invokes the callback wired to the row. Rows without a callback
// do nothing.
func (r Row) Activate() error {
	if r.action == nil {
		return nil
	}
	return r.action()
}

// sameAs compares everything except the callback.
func (r Row) sameAs(o Row) bool {
	return r.Key == o.Key &&
		r.Marker == o.Marker &&
		r.Label == o.Label &&
		r.Badge == o.Badge &&
		r.Selected == o.Selected &&
		r.Done == o.Done
}

// Description is an immutable view of a pane. Construct it with Sidebar or
// ListDetail.
type Description struct {
	kind  Kind
	scope string // Identity of what is described; titles need not be unique
	title string
	empty string
	rows  []Row
}

// Kind returns the builder that produced d.
func (d Description) Kind() Kind { return d.kind }

// Scope identifies the content independently of its title. Row keys are
// only meaningful within one scope.
func (d Description) Scope() string { return d.scope }

// Title is the pane heading.
func (d Description) Title() string { return d.title }

// EmptyMessage is shown instead of rows when there are none. It is empty for
// descriptions that have no empty state.
func (d Description) EmptyMessage() string { return d.empty }

// Len returns the number of rows.
func (d Description) Len() int { return len(d.rows) }

// Row returns row i.
func (d Description) Row(i int) Row { return d.rows[i] }

// Rows returns a copy of the rows.
func (d Description) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// IndexOf returns the position of the row with key, or -1.
func (d Description) IndexOf(key string) int {
	for i, r := range d.rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// Equal reports whether two descriptions present the same content.
// Callbacks are not compared.
func (d Description) Equal(o Description) bool {
	if d.kind != o.kind || d.scope != o.scope || d.title != o.title || d.empty != o.empty || len(d.rows) != len(o.rows) {
		return false
	}
	for i := range d.rows {
		if !d.rows[i].sameAs(o.rows[i]) {
			return false
		}
	}
	return true
}
