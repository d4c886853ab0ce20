package tl

import (
	"fmt"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type Task struct {
	Title string
	Run   func(callback TaskCallback) error

	id string
}

func NewTask(title string, run func(callback TaskCallback) error) *Task {
	return &Task{
		Title: title,
		Run:   run,
	}
}

// Id only available after the task list started
func (t *Task) Id() string {
	return t.id
}

func (t *Task) use() {
	if t.id != "" {
		panic("Cannot use the same task more than once")
	}

	t.id = uuid.NewString()
}

func (t *Task) start(send func(tea.Msg)) (result *Result) {
	result = &Result{Task: t}

	send(&eventTaskStart{Id: t.id})

	controller := &taskController{task: t}

	result.Err = t.run(controller)
	result.Detail = controller.detail

	switch {
	case result.Err != nil:
		result.Error = true
		send(&eventTaskFail{Id: t.id, Detail: result.Detail, Err: result.Err})
	case controller.skipped:
		result.Skipped = true
		result.SkipReason = controller.skipReason
		send(&eventTaskSkip{Id: t.id, Reason: result.SkipReason})
	default:
		send(&eventTaskSuccess{Id: t.id, Detail: result.Detail})
	}

	return result
}

func (t *Task) run(controller *taskController) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("panic: %v", e)
		}
	}()

	if t.Run == nil {
		return ee.New("no Run function provided")
	}

	return t.Run(controller)
}

type taskStatus uint8

const (
	taskStatusPending taskStatus = iota
	taskStatusRunning
	taskStatusSuccess
	taskStatusFailed
	taskStatusSkipped
)

var gray = pp.GetColor(38, 5, 240)

func (s taskStatus) icon() string {
	switch s {
	case taskStatusRunning:
		return pp.BlueString(">").GetForStdout()
	case taskStatusSuccess:
		return pp.GreenString("✓").GetForStdout()
	case taskStatusFailed:
		return pp.RedString("✗").GetForStdout()
	case taskStatusSkipped:
		return pp.ColorString(gray, "-").GetForStdout()
	default:
		return "○"
	}
}

type taskModel struct {
	id          string
	title       string
	status      taskStatus
	detail      string
	skipReason  string
	errorReason string
}

func (t *Task) createModel() taskModel {
	return taskModel{
		id:     t.id,
		title:  t.Title,
		status: taskStatusPending,
	}
}

func (m taskModel) Init() tea.Cmd {
	return nil
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case *eventTaskStart:
		if m.id == v.Id {
			m.status = taskStatusRunning
		}
	case *eventTaskSuccess:
		if m.id == v.Id {
			m.status = taskStatusSuccess
			m.detail = v.Detail
		}
	case *eventTaskFail:
		if m.id == v.Id {
			m.status = taskStatusFailed
			m.detail = v.Detail
			if v.Err != nil {
				m.errorReason = v.Err.Error()
			}
		}
	case *eventTaskSkip:
		if m.id == v.Id {
			m.status = taskStatusSkipped
			m.skipReason = v.Reason
		}
	}

	return m, nil
}

func (m taskModel) View() string {
	b := strings.Builder{}

	b.WriteString(m.status.icon())
	b.WriteString(" ")
	b.WriteString(m.title)

	if m.detail != "" {
		b.WriteString(" ")
		b.WriteString(pp.ColorString(gray, m.detail).GetForStdout())
	}

	if m.status == taskStatusSkipped {
		b.WriteString(" (skipped")
		if m.skipReason != "" {
			b.WriteString(" - ")
			b.WriteString(m.skipReason)
		}
		b.WriteString(")")
	}

	b.WriteString("\n")

	if m.errorReason != "" {
		for _, line := range strings.Split(strings.TrimSpace(m.errorReason), "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

type taskController struct {
	task *Task

	skipped    bool
	skipReason string
	detail     string
}

func (c *taskController) GetTask() *Task {
	return c.task
}

func (c *taskController) Skip(reason string) {
	c.skipped = true
	c.skipReason = reason
}

func (c *taskController) Detail(detail string) {
	c.detail = detail
}
