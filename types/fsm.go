package types

type State int

const (
	Idle State = iota
	Moving
	OutOfService
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case OutOfService:
		return "OutOfService"
	default:
		return "Undefined"
	}
}
