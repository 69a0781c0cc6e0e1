package tasks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
)

// Task is a named unit of work with a done/not-done state.
type Task struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// TaskList is a named, ordered collection of tasks.
type TaskList struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// clone returns a deep copy so snapshots never alias repository storage.
func (l TaskList) clone() TaskList {
	out := l
	out.Tasks = make([]Task, len(l.Tasks))
	copy(out.Tasks, l.Tasks)
	return out
}

// PendingCount returns the number of tasks in the list that are not done.
func PendingCount(l TaskList) int {
	n := 0
	for _, t := range l.Tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

// Repository stores task lists in insertion order.
type Repository struct {
	lists []*TaskList
	index map[string]int // list UID -> position in lists
	newID func() string
}

// DefaultSeed returns the lists a fresh install starts with.
func DefaultSeed() []TaskList {
	return []TaskList{
		{UID: "inbox", Name: "Inbox", Tasks: []Task{{UID: "a", Name: "Do something"}}},
		{UID: "other", Name: "Other"},
		{UID: "waiting", Name: "Waiting"},
	}
}

// Default returns a repository seeded with DefaultSeed.
func Default() *Repository {
	r, err := New(DefaultSeed())
	if err != nil {
		// DefaultSeed is a constant fixture
		panic(err)
	}
	return r
}

// New builds a repository from seed. The seed is copied. List UIDs must be
// unique and non-empty; task UIDs must be unique and non-empty within their list.
func New(seed []TaskList) (*Repository, error) {
	r := &Repository{
		lists: make([]*TaskList, 0, len(seed)),
		index: make(map[string]int, len(seed)),
		newID: func() string { return uuid.New().String() },
	}

	for _, l := range seed {
		if l.UID == "" {
			return nil, perrors.InvalidSeed("list with empty uid")
		}
		if _, dup := r.index[l.UID]; dup {
			return nil, perrors.InvalidSeed(fmt.Sprintf("duplicate list uid %q", l.UID))
		}
		seen := make(map[string]bool, len(l.Tasks))
		for _, t := range l.Tasks {
			if t.UID == "" {
				return nil, perrors.InvalidSeed(fmt.Sprintf("task with empty uid in list %q", l.UID))
			}
			if seen[t.UID] {
				return nil, perrors.InvalidSeed(fmt.Sprintf("duplicate task uid %q in list %q", t.UID, l.UID))
			}
			seen[t.UID] = true
		}

		owned := l.clone()
		r.index[l.UID] = len(r.lists)
		r.lists = append(r.lists, &owned)
	}

	logger.WithComponent("tasks").Debug("Repository seeded", "lists", len(r.lists))
	return r, nil
}

func (r *Repository) lookup(op perrors.Op, listUID string) (*TaskList, error) {
	i, ok := r.index[listUID]
	if !ok {
		return nil, perrors.ListNotFound(op, listUID)
	}
	return r.lists[i], nil
}

// Get returns a snapshot of the list with the given UID.
func (r *Repository) Get(listUID string) (TaskList, error) {
	l, err := r.lookup("tasks.Get", listUID)
	if err != nil {
		return TaskList{}, err
	}
	return l.clone(), nil
}

// All returns snapshots of every list in insertion order.
func (r *Repository) All() []TaskList {
	out := make([]TaskList, len(r.lists))
	for i, l := range r.lists {
		out[i] = l.clone()
	}
	return out
}

// Len returns the number of lists.
func (r *Repository) Len() int {
	return len(r.lists)
}

// ToggleTask flips the done flag of taskUID in listUID. An unknown task is
// ignored; an unknown list is an error.
func (r *Repository) ToggleTask(listUID, taskUID string) error {
	l, err := r.lookup("tasks.ToggleTask", listUID)
	if err != nil {
		return err
	}
	for i := range l.Tasks {
		if l.Tasks[i].UID == taskUID {
			l.Tasks[i].Done = !l.Tasks[i].Done
			logger.WithList(listUID).Debug("Task toggled", "task", taskUID, "done", l.Tasks[i].Done)
			return nil
		}
	}
	logger.WithList(listUID).Debug("Toggle ignored, no such task", "task", taskUID)
	return nil
}

// AddTask appends a not-done task named name to listUID and returns it.
func (r *Repository) AddTask(listUID, name string) (Task, error) {
	l, err := r.lookup("tasks.AddTask", listUID)
	if err != nil {
		return Task{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, perrors.InvalidTaskName(listUID)
	}

	t := Task{UID: r.newID(), Name: name}
	l.Tasks = append(l.Tasks, t)
	logger.WithList(listUID).Debug("Task added", "task", t.UID)
	return t, nil
}
