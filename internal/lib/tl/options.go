package tl

import tea "github.com/charmbracelet/bubbletea"

type option struct {
	exitOnError    bool
	programOptions []tea.ProgramOption
}

func defaultOption() option {
	return option{
		exitOnError: false,
	}
}

type OptionApplier func(o *option)

// WithExitOnError skips the remaining tasks after the first failure
func WithExitOnError(exitOnError bool) OptionApplier {
	return func(o *option) {
		o.exitOnError = exitOnError
	}
}

// WithProgramOptions passes options to the underlying bubbletea program (e.g. output)
func WithProgramOptions(options ...tea.ProgramOption) OptionApplier {
	return func(o *option) {
		o.programOptions = append(o.programOptions, options...)
	}
}
