package places

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Type PlaceType // opcional
	City string    // opcional, match exacto sin mayúsculas
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Place, error) {
	if f.Type != "" && !ValidPlaceType(f.Type) {
		return nil, ErrInvalidInput
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Place, 0, len(all))
	for _, p := range all {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.City != "" && !strings.EqualFold(p.City, f.City) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Place, error) {
	return s.repo.GetByID(ctx, id)
}
