package addresses

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotOwner     = errors.New("not the owner")
)

type Service struct {
	repo Repository
	now  func() time.Time

	// mu serializa las escrituras que tocan varias direcciones a la vez
	// (degradar primarias + guardar): el invariante "una sola primaria"
	// debe sostenerse también con requests concurrentes.
	mu sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// SaveInput: con ID reemplaza la dirección existente, sin ID da de alta.
type SaveInput struct {
	ID string

	Label      string
	Street     string
	City       string
	PostalCode string
	IsPrimary  bool
	Notes      string
}

// Save aplica la regla de primaria-única ANTES de escribir: si la entrante
// viene marcada primaria, degrada todas las demás del dueño.
func (s *Service) Save(ctx context.Context, ownerUserID string, in SaveInput) (Address, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Address{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Label) == "" || strings.TrimSpace(in.Street) == "" || strings.TrimSpace(in.City) == "" {
		return Address{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.IsPrimary {
		if err := s.demoteAllLocked(ctx, ownerUserID); err != nil {
			return Address{}, err
		}
	}

	now := s.now()

	if strings.TrimSpace(in.ID) != "" {
		current, err := s.repo.GetByID(ctx, in.ID)
		if err != nil {
			return Address{}, err
		}
		if current.OwnerUserID != ownerUserID {
			return Address{}, ErrNotOwner
		}

		current.Label = strings.TrimSpace(in.Label)
		current.Street = strings.TrimSpace(in.Street)
		current.City = strings.TrimSpace(in.City)
		current.PostalCode = strings.TrimSpace(in.PostalCode)
		current.IsPrimary = in.IsPrimary
		current.Notes = strings.TrimSpace(in.Notes)
		current.UpdatedAt = now

		if err := s.repo.Update(ctx, current); err != nil {
			return Address{}, err
		}
		return current, nil
	}

	a := Address{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Label:       strings.TrimSpace(in.Label),
		Street:      strings.TrimSpace(in.Street),
		City:        strings.TrimSpace(in.City),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		IsPrimary:   in.IsPrimary,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Address{}, err
	}
	return a, nil
}

// SetPrimary reescribe la colección completa: true en la elegida, false en el resto.
func (s *Service) SetPrimary(ctx context.Context, ownerUserID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.OwnerUserID != ownerUserID {
		return ErrNotOwner
	}

	all, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return err
	}

	now := s.now()
	for _, a := range all {
		want := a.ID == id
		if a.IsPrimary == want {
			continue
		}
		a.IsPrimary = want
		a.UpdatedAt = now
		if err := s.repo.Update(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.OwnerUserID != ownerUserID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Address, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Address{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Address, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) demoteAllLocked(ctx context.Context, ownerUserID string) error {
	all, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return err
	}
	for _, a := range all {
		if !a.IsPrimary {
			continue
		}
		a.IsPrimary = false
		a.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
