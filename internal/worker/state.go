package worker

type State int32

const (
	StateIdle State = iota
	StateFetching
	StateProcessing
	StateAcking
	StateRecovering
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateFetching:
		return "FETCHING"
	case StateProcessing:
		return "PROCESSING"
	case StateAcking:
		return "ACKING"
	case StateRecovering:
		return "RECOVERING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}
