package walkers

import (
	"context"
	"errors"
	"sort"
	"strings"

	"doggo-marketplace/internal/domain/users"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFilter filtra el directorio de paseadores.
type ListFilter struct {
	Service ServiceType // opcional
	MinTier users.Tier  // opcional
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Profile, error) {
	if f.Service != "" && !ValidServiceType(f.Service) {
		return nil, ErrInvalidInput
	}
	if f.MinTier != "" && !users.ValidTier(f.MinTier) {
		return nil, ErrInvalidInput
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(all))
	for _, p := range all {
		if f.Service != "" && !p.Offers(f.Service) {
			continue
		}
		if f.MinTier != "" && p.Tier.Rank() < f.MinTier.Rank() {
			continue
		}
		out = append(out, p)
	}

	// Mejor puntuados primero (criterio de la vista de búsqueda).
	sort.Slice(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// ProfileOf devuelve el perfil de paseador asociado a un usuario.
// Lo usa requests al aceptar una solicitud (el usuario actúa como paseador).
func (s *Service) ProfileOf(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.repo.GetByUserID(ctx, userID)
}
