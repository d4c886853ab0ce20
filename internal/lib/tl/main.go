// Package tl renders a list of sequential tasks with their live status.
package tl

import (
	"sync/atomic"

	"github.com/ImSingee/go-ex/ee"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCanceled = ee.New("canceled")

type Runner struct {
	tl *TaskList

	results []*Result
	// done is set by the task goroutine, it may still be running after a cancel
	done atomic.Bool
}

func New(tasks []*Task, options ...OptionApplier) *Runner {
	return &Runner{
		tl: NewTaskList(tasks, options...),
	}
}

// Run executes all tasks while rendering them and returns one result per task.
//
// A task error does not make Run fail, inspect the results for that.
func (runner *Runner) Run() ([]*Result, error) {
	runner.tl.prepare()

	p := tea.NewProgram(runnerModel{tl: runner.tl.createModel()}, runner.tl.programOptions...)

	go func() {
		defer func() {
			runner.done.Store(true)
			p.Send(tea.Quit())
		}()

		runner.results = runner.tl.start(p.Send)
	}()

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	if !runner.done.Load() {
		return nil, ErrCanceled
	}

	return runner.results, nil
}

// RunPlain executes all tasks without any rendering
func (runner *Runner) RunPlain() []*Result {
	runner.tl.prepare()

	return runner.tl.start(func(tea.Msg) {})
}

type runnerModel struct {
	tl tea.Model
}

func (m runnerModel) Init() tea.Cmd {
	return nil
}

func (m runnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if shouldQuit(msg) {
		return m, tea.Quit
	}

	tl, cmd := m.tl.Update(msg)
	m.tl = tl
	return m, cmd
}

func (m runnerModel) View() string {
	return m.tl.View()
}

func shouldQuit(msg tea.Msg) bool {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return msg.String() == "ctrl+c"
	}

	return false
}
