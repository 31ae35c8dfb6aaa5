package memory

import (
	"context"
	"sort"
	"sync"

	"doggo-marketplace/internal/domain/places"
)

type placeRepo struct {
	mu   sync.RWMutex
	byID map[string]places.Place
}

func newPlaceRepo() *placeRepo {
	return &placeRepo{byID: make(map[string]places.Place)}
}

func (r *placeRepo) put(p places.Place) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
}

func (r *placeRepo) GetByID(ctx context.Context, id string) (places.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return places.Place{}, ErrNotFound
	}
	return p, nil
}

func (r *placeRepo) List(ctx context.Context) ([]places.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]places.Place, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	return out, nil
}
