package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotOwner     = errors.New("not the owner")

	// ErrDogInUse: el perro está comprometido en una orden Pending o InProgress.
	ErrDogInUse = errors.New("dog has an active order")
)

// OrderGuard consulta si un perro está referenciado por una orden no terminal.
// Lo implementa el módulo de órdenes; acá solo conocemos la interfaz para no
// crear un ciclo de imports (orders ya importa dogs por el snapshot).
type OrderGuard interface {
	DogInUse(ctx context.Context, dogID string) (bool, error)
}

type Service struct {
	repo  Repository
	guard OrderGuard // puede ser nil (sin validación de órdenes activas)
	now   func() time.Time
}

func NewService(repo Repository, guard OrderGuard) *Service {
	return &Service{
		repo:  repo,
		guard: guard,
		now:   time.Now,
	}
}

// SetGuard conecta el guard después de construir el servicio de órdenes
// (dogs se instancia primero porque orders depende de él).
func (s *Service) SetGuard(guard OrderGuard) {
	s.guard = guard
}

type CreateInput struct {
	Name  string
	Breed string
	Age   int
	Image string
	Notes string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Dog, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed) == "" {
		return Dog{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Dog{}, ErrInvalidInput
	}
	// El formulario exige foto antes de crear; el servicio también.
	if strings.TrimSpace(in.Image) == "" {
		return Dog{}, ErrInvalidInput
	}

	now := s.now()
	d := Dog{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Image:       strings.TrimSpace(in.Image),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// UpdateInput es un PATCH real: nil = no tocar.
type UpdateInput struct {
	Name  *string
	Breed *string
	Age   *int
	Image *string
	Notes *string
}

func (s *Service) Update(ctx context.Context, id, ownerUserID string, in UpdateInput) (Dog, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if d.OwnerUserID != ownerUserID {
		return Dog{}, ErrNotOwner
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Name = v
	}
	if in.Breed != nil {
		v := strings.TrimSpace(*in.Breed)
		if v == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Breed = v
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Dog{}, ErrInvalidInput
		}
		d.Age = *in.Age
	}
	if in.Image != nil {
		v := strings.TrimSpace(*in.Image)
		if v == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Image = v
	}
	if in.Notes != nil {
		d.Notes = strings.TrimSpace(*in.Notes)
	}

	d.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// Delete borra el perro, salvo que tenga una orden Pending/InProgress.
// A diferencia de la versión original (que confiaba en el pre-chequeo de la
// pantalla de edición), acá el servicio re-valida siempre que haya guard.
func (s *Service) Delete(ctx context.Context, id, ownerUserID string) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.OwnerUserID != ownerUserID {
		return ErrNotOwner
	}

	if s.guard != nil {
		inUse, err := s.guard.DogInUse(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrDogInUse
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}
