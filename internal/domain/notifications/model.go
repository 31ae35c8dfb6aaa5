package notifications

import "time"

type Notification struct {
	ID     string
	UserID string

	Kind        Kind
	Title       string
	Description string

	IsRead bool

	// RelatedOrderID enlaza con la orden que originó la notificación (opcional).
	RelatedOrderID string
	ActivityKind   ActivityKind

	CreatedAt time.Time
}
