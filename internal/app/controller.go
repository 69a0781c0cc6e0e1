package app

import (
	"log/slog"

	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
	"github.com/zhubert/taches/internal/tasks"
	"github.com/zhubert/taches/internal/ui"
	"github.com/zhubert/taches/internal/view"
)

// Surface is where the controller renders. ui.Screen and ui.TextSurface
// both satisfy it.
type Surface interface {
	Reset(regions ...string) error
	Render(region string, d view.Description) error
}

// State is the controller lifecycle state
type State int

const (
	StateUnloaded State = iota // No list selected, nothing rendered
	StateLoaded                // A list is selected and both panes are mounted
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "Unloaded"
	case StateLoaded:
		return "Loaded"
	default:
		return "Unknown"
	}
}

// Controller owns the selection and turns user intent into repository calls.
// After every transition both panes are rebuilt from the repository and
// rendered into the surface.
type Controller struct {
	repo    *tasks.Repository
	surface Surface

	state    State
	selected string
	renders  int

	log *slog.Logger
}

// NewController creates an unloaded controller
func NewController(repo *tasks.Repository, surface Surface) *Controller {
	return &Controller{
		repo:    repo,
		surface: surface,
		state:   StateUnloaded,
		log:     logger.WithComponent("controller"),
	}
}

// Load mounts the sidebar and detail regions and shows listUID.
// An unknown list leaves the controller untouched.
func (c *Controller) Load(listUID string) error {
	if _, err := c.repo.Get(listUID); err != nil {
		return err
	}
	if err := c.surface.Reset(ui.SidebarRegion, ui.DetailRegion); err != nil {
		return err
	}

	c.selected = listUID
	c.state = StateLoaded
	c.log.Info("loaded", "selected", listUID)
	return c.rerender()
}

// SelectList changes the selection. The regions are reused.
func (c *Controller) SelectList(listUID string) error {
	if c.state != StateLoaded {
		return perrors.NotLoaded("app.SelectList")
	}
	if _, err := c.repo.Get(listUID); err != nil {
		return err
	}

	c.log.Debug("select list", "from", c.selected, "to", listUID)
	c.selected = listUID
	return c.rerender()
}

// ToggleTask flips a task of the selected list. Unknown tasks are ignored
// by the repository but still re-render.
func (c *Controller) ToggleTask(taskUID string) error {
	if c.state != StateLoaded {
		return perrors.NotLoaded("app.ToggleTask")
	}
	if err := c.repo.ToggleTask(c.selected, taskUID); err != nil {
		return err
	}
	return c.rerender()
}

// AddTask appends a task to the selected list
func (c *Controller) AddTask(name string) error {
	if c.state != StateLoaded {
		return perrors.NotLoaded("app.AddTask")
	}
	if _, err := c.repo.AddTask(c.selected, name); err != nil {
		return err
	}
	return c.rerender()
}

// Selected returns the selected list UID, if loaded
func (c *Controller) Selected() (string, bool) {
	if c.state != StateLoaded {
		return "", false
	}
	return c.selected, true
}

// SelectedList returns a snapshot of the selected list, if loaded
func (c *Controller) SelectedList() (tasks.TaskList, bool) {
	if c.state != StateLoaded {
		return tasks.TaskList{}, false
	}
	l, err := c.repo.Get(c.selected)
	if err != nil {
		return tasks.TaskList{}, false
	}
	return l, true
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// rerender rebuilds both descriptions from current state. A selected list
// that vanished from the repository is a defect and is returned as is.
func (c *Controller) rerender() error {
	current, err := c.repo.Get(c.selected)
	if err != nil {
		return err
	}

	all := c.repo.All()
	items := make([]view.SidebarItem, 0, len(all))
	for _, l := range all {
		items = append(items, view.SidebarItem{
			UID:        l.UID,
			Name:       l.Name,
			TodosCount: tasks.PendingCount(l),
			Selected:   l.UID == c.selected,
		})
	}

	sidebar := view.Sidebar(items, c.SelectList)
	detail := view.ListDetail(view.ListDetailData{UID: current.UID, Name: current.Name, Tasks: current.Tasks}, c.ToggleTask)

	if err := c.surface.Render(ui.SidebarRegion, sidebar); err != nil {
		return err
	}
	if err := c.surface.Render(ui.DetailRegion, detail); err != nil {
		return err
	}

	c.renders++
	c.log.Debug("re-rendered", "render", c.renders, "selected", c.selected, "lists", len(all), "tasks", len(current.Tasks))
	return nil
}
