package requests

import "context"

type Repository interface {
	Create(ctx context.Context, r Request) error
	Update(ctx context.Context, r Request) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByOwner: avisos del dueño, más nuevos primero.
	ListByOwner(ctx context.Context, ownerUserID string) ([]Request, error)

	// ListOpen: tablón público de avisos Active, más nuevos primero.
	ListOpen(ctx context.Context) ([]Request, error)
}
