package view

import "strconv"

// SidebarItem is the derived view-model of one list. TodosCount is computed
// by the caller.
type SidebarItem struct {
	UID        string
	Name       string
	TodosCount int
	Selected   bool
}

// Sidebar describes the list-of-lists pane. Activating a row calls
// onListClick with that list's UID.
func Sidebar(items []SidebarItem, onListClick func(uid string) error) Description {
	d := Description{
		kind:  KindSidebar,
		scope: SidebarTitle,
		title: SidebarTitle,
		rows:  make([]Row, 0, len(items)),
	}

	for _, item := range items {
		row := Row{
			Key:      item.UID,
			Label:    item.Name,
			Badge:    countBadge(item.TodosCount),
			Selected: item.Selected,
		}
		if item.Selected {
			row.Marker = SelectedMarker
		}
		if onListClick != nil {
			uid := item.UID
			row.action = func() error { return onListClick(uid) }
		}
		d.rows = append(d.rows, row)
	}
	return d
}

// countBadge renders zero as blank.
func countBadge(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
