package model

type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

const (
	// NoActivityLines is the count reported for a day without activity.
	NoActivityLines = 0
	// ExpectedDailyLines is the smallest daily count considered healthy.
	ExpectedDailyLines = 50
)

func Classify(lines int) Status {
	switch {
	case lines <= NoActivityLines:
		return StatusError
	case lines < ExpectedDailyLines:
		return StatusWarning
	default:
		return StatusOK
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusError:
		return "ERROR"
	default:
		panic("unknown status")
	}
}
