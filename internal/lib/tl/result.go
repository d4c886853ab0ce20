package tl

type Result struct {
	Task *Task

	Skipped    bool
	SkipReason string
	Detail     string
	Error      bool
	Err        error
}
