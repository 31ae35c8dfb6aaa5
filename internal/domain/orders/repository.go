package orders

import "context"

type Repository interface {
	Create(ctx context.Context, o Order) error
	Update(ctx context.Context, o Order) error
	GetByID(ctx context.Context, id string) (Order, error)

	// ListByParticipant devuelve las órdenes donde el usuario es dueño o
	// paseador, más nuevas primero (el controller original "prepend-ea").
	ListByParticipant(ctx context.Context, userID string) ([]Order, error)

	// ListByDog devuelve las órdenes que referencian al perro.
	ListByDog(ctx context.Context, dogID string) ([]Order, error)
}
