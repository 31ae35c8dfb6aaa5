package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"doggo-marketplace/internal/domain/addresses"
)

type addressRepo struct {
	mu   sync.RWMutex
	byID map[string]addresses.Address
}

func newAddressRepo() *addressRepo {
	return &addressRepo{byID: make(map[string]addresses.Address)}
}

func (r *addressRepo) Create(ctx context.Context, a addresses.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("address id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("address already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *addressRepo) Update(ctx context.Context, a addresses.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("address id required")
	}
	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *addressRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *addressRepo) GetByID(ctx context.Context, id string) (addresses.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return addresses.Address{}, ErrNotFound
	}
	return a, nil
}

func (r *addressRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]addresses.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]addresses.Address, 0)
	for _, a := range r.byID {
		if a.OwnerUserID == ownerUserID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
