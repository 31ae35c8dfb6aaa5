package walkers

import "context"

type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)
}
