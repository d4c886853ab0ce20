package tl

// TaskCallback lets a running task report back to the list
type TaskCallback interface {
	GetTask() *Task
	Skip(reason string)
	// Detail sets a short text shown after the task title
	Detail(detail string)
}
