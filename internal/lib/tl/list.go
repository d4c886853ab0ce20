package tl

import (
	"strings"

	"github.com/ImSingee/go-ex/mr"
	tea "github.com/charmbracelet/bubbletea"
)

type TaskList struct {
	Tasks []*Task

	option
}

func NewTaskList(tasks []*Task, options ...OptionApplier) *TaskList {
	tl := &TaskList{
		Tasks:  tasks,
		option: defaultOption(),
	}

	for _, applyOpt := range options {
		applyOpt(&tl.option)
	}

	return tl
}

func (tl *TaskList) prepare() {
	for _, task := range tl.Tasks {
		task.use()
	}
}

// start runs the tasks one by one, the result slice is index aligned with Tasks
func (tl *TaskList) start(send func(tea.Msg)) []*Result {
	results := make([]*Result, len(tl.Tasks))

	stop := false
	for i, task := range tl.Tasks {
		if stop {
			send(&eventTaskSkip{Id: task.id, Reason: "previous task failed"})
			results[i] = &Result{Task: task, Skipped: true, SkipReason: "previous task failed"}
			continue
		}

		results[i] = task.start(send)

		if results[i].Error && tl.exitOnError {
			stop = true
		}
	}

	return results
}

type tlModel struct {
	tasks []tea.Model
}

func (tl *TaskList) createModel() tlModel {
	return tlModel{
		tasks: mr.Map(tl.Tasks, func(t *Task, _ int) tea.Model {
			return t.createModel()
		}),
	}
}

func (m tlModel) Init() tea.Cmd {
	return nil
}

func (m tlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	for i := range m.tasks {
		m.tasks[i], _ = m.tasks[i].Update(msg)
	}

	return m, nil
}

func (m tlModel) View() string {
	views := mr.Map(m.tasks, func(task tea.Model, _ int) string {
		return task.View()
	})

	return strings.Join(views, "")
}
