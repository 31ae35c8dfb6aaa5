package chat

import "time"

// Message pertenece a la conversación entre dos usuarios. La conversación no
// tiene entidad propia: se identifica por el par (ordenado) de participantes.
type Message struct {
	ID string

	SenderUserID   string
	ReceiverUserID string

	Text string

	CreatedAt time.Time
}
