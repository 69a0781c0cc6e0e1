package view

import "github.com/zhubert/taches/internal/tasks"

// ListDetailData is what the detail pane needs from the selected list.
type ListDetailData struct {
	UID   string
	Name  string
	Tasks []tasks.Task
}

// ListDetail describes the selected list. A list without tasks gets the
// EmptyListMessage instead of rows. Activating a row calls onToggleTask with
// the task UID.
func ListDetail(data ListDetailData, onToggleTask func(taskUID string) error) Description {
	d := Description{
		kind:  KindDetail,
		scope: data.UID,
		title: data.Name,
		rows:  make([]Row, 0, len(data.Tasks)),
	}
	if len(data.Tasks) == 0 {
		d.empty = EmptyListMessage
		return d
	}

	for _, task := range data.Tasks {
		row := Row{
			Key:    task.UID,
			Marker: PendingMarker,
			Label:  task.Name,
			Done:   task.Done,
		}
		if task.Done {
			row.Marker = DoneMarker
		}
		if onToggleTask != nil {
			uid := task.UID
			row.action = func() error { return onToggleTask(uid) }
		}
		d.rows = append(d.rows, row)
	}
	return d
}
