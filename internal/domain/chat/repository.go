package chat

import "context"

type Repository interface {
	Create(ctx context.Context, m Message) error

	// ListConversation: mensajes entre ambos usuarios, más viejos primero.
	ListConversation(ctx context.Context, userA, userB string) ([]Message, error)
}
