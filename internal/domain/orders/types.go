package orders

// Status de una orden. Solo avanza:
// Pending -> InProgress -> Completed, o Pending/InProgress -> Cancelled.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Terminal: de acá no se sale (las órdenes terminadas quedan para el historial).
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition valida la máquina de estados (nunca hacia atrás).
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// ActivityKind son las actividades que el paseador registra durante el paseo.
type ActivityKind string

const (
	ActivityPoop  ActivityKind = "poop"
	ActivityPlay  ActivityKind = "play"
	ActivitySniff ActivityKind = "sniff"
	ActivityStart ActivityKind = "start"
)

func ValidActivityKind(k ActivityKind) bool {
	switch k {
	case ActivityPoop, ActivityPlay, ActivitySniff, ActivityStart:
		return true
	default:
		return false
	}
}
