package tl

type eventTaskStart struct {
	Id string
}

type eventTaskSuccess struct {
	Id     string
	Detail string
}

type eventTaskFail struct {
	Id     string
	Detail string
	Err    error
}

type eventTaskSkip struct {
	Id     string
	Reason string
}
