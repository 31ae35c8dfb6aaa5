package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"doggo-marketplace/internal/domain/orders"
)

type orderRepo struct {
	mu   sync.RWMutex
	byID map[string]orders.Order
}

func newOrderRepo() *orderRepo {
	return &orderRepo{byID: make(map[string]orders.Order)}
}

func (r *orderRepo) Create(ctx context.Context, o orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("order id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("order already exists")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *orderRepo) Update(ctx context.Context, o orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("order id required")
	}
	if _, exists := r.byID[o.ID]; !exists {
		return ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return orders.Order{}, ErrNotFound
	}
	return o, nil
}

func (r *orderRepo) ListByParticipant(ctx context.Context, userID string) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]orders.Order, 0)
	for _, o := range r.byID {
		if o.OwnerUserID == userID || o.Walker.UserID == userID {
			out = append(out, o)
		}
	}

	// Más nuevas primero: la vista de órdenes muestra la última arriba.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *orderRepo) ListByDog(ctx context.Context, dogID string) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]orders.Order, 0)
	for _, o := range r.byID {
		if o.Dog.ID == dogID {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
