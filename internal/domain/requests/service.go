package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doggo-marketplace/internal/domain/addresses"
	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/domain/walkers"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotOwner     = errors.New("not the owner")
	ErrNotActive    = errors.New("request is not active")
	ErrOwnRequest   = errors.New("cannot accept own request")
)

// DogFinder y AddressFinder: lecturas de otros módulos para armar el snapshot.
type DogFinder interface {
	GetByID(ctx context.Context, id string) (dogs.Dog, error)
}

type AddressFinder interface {
	GetByID(ctx context.Context, id string) (addresses.Address, error)
}

// OrderCreator: aceptar una solicitud sintetiza exactamente una orden Pending.
type OrderCreator interface {
	CreateFromRequest(ctx context.Context, walkerUserID string, in orders.FromRequestInput) (orders.Order, error)
}

type Service struct {
	repo      Repository
	dogFinder DogFinder
	addrs     AddressFinder
	creator   OrderCreator
	now       func() time.Time
}

func NewService(repo Repository, dogFinder DogFinder, addrs AddressFinder, creator OrderCreator) *Service {
	return &Service{
		repo:      repo,
		dogFinder: dogFinder,
		addrs:     addrs,
		creator:   creator,
		now:       time.Now,
	}
}

type AddInput struct {
	DogID        string
	Date         string
	TimeSlot     string
	ServiceTypes []walkers.ServiceType
	Price        float64
	AddressID    string
}

// Add publica un aviso en el tablón con estado Active.
func (s *Service) Add(ctx context.Context, ownerUserID string, in AddInput) (Request, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Request{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.TimeSlot) == "" {
		return Request{}, ErrInvalidInput
	}
	if len(in.ServiceTypes) == 0 {
		return Request{}, ErrInvalidInput
	}
	for _, t := range in.ServiceTypes {
		if !walkers.ValidServiceType(t) {
			return Request{}, ErrInvalidInput
		}
	}
	if in.Price <= 0 {
		return Request{}, ErrInvalidInput
	}

	dog, err := s.dogFinder.GetByID(ctx, in.DogID)
	if err != nil {
		return Request{}, fmt.Errorf("dog lookup: %w", err)
	}
	if dog.OwnerUserID != ownerUserID {
		return Request{}, ErrNotOwner
	}

	addr, err := s.addrs.GetByID(ctx, in.AddressID)
	if err != nil {
		return Request{}, fmt.Errorf("address lookup: %w", err)
	}
	if addr.OwnerUserID != ownerUserID {
		return Request{}, ErrNotOwner
	}

	now := s.now()
	req := Request{
		ID:            uuid.NewString(),
		Dog:           dog,
		OwnerUserID:   ownerUserID,
		Date:          strings.TrimSpace(in.Date),
		TimeSlot:      strings.TrimSpace(in.TimeSlot),
		ServiceTypes:  in.ServiceTypes,
		Price:         in.Price,
		AddressID:     addr.ID,
		LocationLabel: addr.Label,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.OwnerUserID != ownerUserID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

// Accept: el usuario (actuando como paseador) toma el aviso. Produce una
// orden Pending con el perro y el precio del aviso, y deja la solicitud en
// Filled (no se borra: el dueño la sigue viendo, ahora cubierta).
func (s *Service) Accept(ctx context.Context, walkerUserID, id string) (orders.Order, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return orders.Order{}, err
	}
	if req.Status != StatusActive {
		return orders.Order{}, ErrNotActive
	}
	if req.OwnerUserID == walkerUserID {
		return orders.Order{}, ErrOwnRequest
	}

	o, err := s.creator.CreateFromRequest(ctx, walkerUserID, orders.FromRequestInput{
		Dog:         req.Dog,
		OwnerUserID: req.OwnerUserID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		ServiceType: req.ServiceTypes[0],
		Price:       req.Price,
	})
	if err != nil {
		return orders.Order{}, err
	}

	req.Status = StatusFilled
	req.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, req); err != nil {
		return orders.Order{}, err
	}

	return o, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Request, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ListOpen(ctx context.Context) ([]Request, error) {
	return s.repo.ListOpen(ctx)
}

// ExpireStale marca Expired los avisos Active publicados antes del cutoff.
// Lo dispara un cron horario; devuelve cuántos expiró.
func (s *Service) ExpireStale(ctx context.Context, olderThan time.Duration) (int, error) {
	open, err := s.repo.ListOpen(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-olderThan)
	expired := 0
	for _, req := range open {
		if req.CreatedAt.After(cutoff) {
			continue
		}
		req.Status = StatusExpired
		req.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, req); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}
