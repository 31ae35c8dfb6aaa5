package notifications

// Kind clasifica la notificación dentro de la app.
type Kind string

const (
	KindBookingConfirmed Kind = "booking_confirmed"
	KindWalkStarted      Kind = "walk_started"
	KindWalkFinished     Kind = "walk_finished"
	KindDogActivity      Kind = "dog_activity"
	KindSystem           Kind = "system"
)

func ValidKind(k Kind) bool {
	switch k {
	case KindBookingConfirmed, KindWalkStarted, KindWalkFinished, KindDogActivity, KindSystem:
		return true
	default:
		return false
	}
}

// ActivityKind es el sub-tipo cuando Kind == dog_activity.
type ActivityKind string

const (
	ActivityPoop  ActivityKind = "poop"
	ActivityPlay  ActivityKind = "play"
	ActivitySniff ActivityKind = "sniff"
)
