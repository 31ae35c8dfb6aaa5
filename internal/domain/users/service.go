package users

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateInput es un PATCH real: nil = no tocar el campo.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Image     *string

	// WalkerTier solo se acepta si el usuario ya es paseador.
	WalkerTier *Tier
}

func (s *Service) UpdatePersonal(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if v == "" {
			return User{}, ErrInvalidInput
		}
		u.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if v == "" {
			return User{}, ErrInvalidInput
		}
		u.LastName = v
	}
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		if v == "" || !strings.Contains(v, "@") {
			return User{}, ErrInvalidInput
		}
		u.Email = v
	}
	if in.Image != nil {
		u.Image = strings.TrimSpace(*in.Image)
	}
	if in.WalkerTier != nil {
		if !HasRole(u, RoleDogWalker) {
			return User{}, ErrInvalidInput
		}
		if !ValidTier(*in.WalkerTier) {
			return User{}, ErrInvalidInput
		}
		u.WalkerTier = *in.WalkerTier
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// WalletBalance expone solo el saldo (la vista de billetera no necesita el perfil entero).
func (s *Service) WalletBalance(ctx context.Context, id string) (float64, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return u.WalletBalance, nil
}
