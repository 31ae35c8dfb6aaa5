package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"doggo-marketplace/internal/domain/requests"
)

type requestRepo struct {
	mu   sync.RWMutex
	byID map[string]requests.Request
}

func newRequestRepo() *requestRepo {
	return &requestRepo{byID: make(map[string]requests.Request)}
}

func (r *requestRepo) Create(ctx context.Context, req requests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return errors.New("request already exists")
	}
	r.byID[req.ID] = req
	return nil
}

func (r *requestRepo) Update(ctx context.Context, req requests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; !exists {
		return ErrNotFound
	}
	r.byID[req.ID] = req
	return nil
}

func (r *requestRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (requests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return requests.Request{}, ErrNotFound
	}
	return req, nil
}

func (r *requestRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]requests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]requests.Request, 0)
	for _, req := range r.byID {
		if req.OwnerUserID == ownerUserID {
			out = append(out, req)
		}
	}

	sortNewestFirst(out)
	return out, nil
}

func (r *requestRepo) ListOpen(ctx context.Context) ([]requests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]requests.Request, 0)
	for _, req := range r.byID {
		if req.Status == requests.StatusActive {
			out = append(out, req)
		}
	}

	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(out []requests.Request) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
}
