package memory

import (
	"context"
	"sort"
	"sync"

	"doggo-marketplace/internal/domain/walkers"
)

type walkerRepo struct {
	mu   sync.RWMutex
	byID map[string]walkers.Profile
}

func newWalkerRepo() *walkerRepo {
	return &walkerRepo{byID: make(map[string]walkers.Profile)}
}

func (r *walkerRepo) put(p walkers.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
}

func (r *walkerRepo) List(ctx context.Context) ([]walkers.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]walkers.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	return out, nil
}

func (r *walkerRepo) GetByID(ctx context.Context, id string) (walkers.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return walkers.Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *walkerRepo) GetByUserID(ctx context.Context, userID string) (walkers.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return walkers.Profile{}, ErrNotFound
}
