package places

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Place, error)

	// List: directorio completo, mejor puntuados primero.
	List(ctx context.Context) ([]Place, error)
}
