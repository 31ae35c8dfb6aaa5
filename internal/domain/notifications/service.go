package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Kind           Kind
	Title          string
	Description    string
	RelatedOrderID string
	ActivityKind   ActivityKind
}

// Push crea una notificación para el usuario. La usan los flujos de órdenes
// (reserva confirmada, paseo iniciado/terminado, actividad del perro).
func (s *Service) Push(ctx context.Context, userID string, in CreateInput) (Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return Notification{}, ErrInvalidInput
	}
	if !ValidKind(in.Kind) {
		return Notification{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return Notification{}, ErrInvalidInput
	}

	n := Notification{
		ID:             uuid.NewString(),
		UserID:         userID,
		Kind:           in.Kind,
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		IsRead:         false,
		RelatedOrderID: strings.TrimSpace(in.RelatedOrderID),
		ActivityKind:   in.ActivityKind,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// MarkRead marca como leída. Idempotente: si ya estaba leída no toca nada.
// Solo el dueño de la notificación puede marcarla.
func (s *Service) MarkRead(ctx context.Context, userID, id string) (Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Notification{}, ErrInvalidInput
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Notification{}, err
	}
	if n.UserID != userID {
		return Notification{}, ErrForbidden
	}
	if n.IsRead {
		return n, nil
	}

	n.IsRead = true
	if err := s.repo.Update(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}
