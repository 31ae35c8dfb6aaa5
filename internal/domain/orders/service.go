package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/notifications"
	"doggo-marketplace/internal/domain/walkers"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoWalkerSelected  = errors.New("no walker selected")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotInProgress     = errors.New("order is not in progress")
	ErrServiceNotOffered = errors.New("walker does not offer this service")
)

// DogFinder y WalkerFinder: lecturas que orders necesita de otros módulos.
type DogFinder interface {
	GetByID(ctx context.Context, id string) (dogs.Dog, error)
}

type WalkerFinder interface {
	GetByID(ctx context.Context, id string) (walkers.Profile, error)
	ProfileOf(ctx context.Context, userID string) (walkers.Profile, error)
}

// Notifier empuja notificaciones in-app; lo implementa notifications.Service.
type Notifier interface {
	Push(ctx context.Context, userID string, in notifications.CreateInput) (notifications.Notification, error)
}

type Service struct {
	repo       Repository
	dogFinder  DogFinder
	walkFinder WalkerFinder
	notifier   Notifier // puede ser nil (sin notificaciones, p.ej. en tests)
	now        func() time.Time
}

func NewService(repo Repository, dogFinder DogFinder, walkFinder WalkerFinder, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		dogFinder:  dogFinder,
		walkFinder: walkFinder,
		notifier:   notifier,
		now:        time.Now,
	}
}

type BookingInput struct {
	DogID       string
	WalkerID    string
	ServiceType walkers.ServiceType
	Date        string
	Time        string

	// Price <= 0 significa "usar el precio sugerido" (Quote).
	Price           float64
	CombinedMedical bool
}

// CreateBooking arma una orden Pending con snapshots del perro y del paseador.
func (s *Service) CreateBooking(ctx context.Context, ownerUserID string, in BookingInput) (Order, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Order{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.WalkerID) == "" {
		return Order{}, ErrNoWalkerSelected
	}
	if !walkers.ValidServiceType(in.ServiceType) {
		return Order{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return Order{}, ErrInvalidInput
	}

	dog, err := s.dogFinder.GetByID(ctx, in.DogID)
	if err != nil {
		return Order{}, fmt.Errorf("dog lookup: %w", err)
	}
	walker, err := s.walkFinder.GetByID(ctx, in.WalkerID)
	if err != nil {
		return Order{}, fmt.Errorf("walker lookup: %w", err)
	}
	if !walker.Offers(in.ServiceType) || !walkers.AllowedForTier(walker.Tier, in.ServiceType) {
		return Order{}, ErrServiceNotOffered
	}

	price := in.Price
	if price <= 0 {
		price = Quote(walker.HourlyRate, in.ServiceType, in.CombinedMedical)
	}

	now := s.now()
	o := Order{
		ID:              uuid.NewString(),
		Dog:             dog,
		Walker:          walker,
		OwnerUserID:     ownerUserID,
		Date:            strings.TrimSpace(in.Date),
		StartTime:       strings.TrimSpace(in.Time),
		DurationMinutes: 60,
		ServiceType:     in.ServiceType,
		Status:          StatusPending,
		TotalCost:       price,
		GPSTrack:        []GPS{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Order{}, err
	}

	s.notify(ctx, ownerUserID, notifications.CreateInput{
		Kind:           notifications.KindBookingConfirmed,
		Title:          "Rezerwacja potwierdzona",
		Description:    fmt.Sprintf("%s zaopiekuje się psem %s (%s %s).", walker.User.FirstName, dog.Name, o.Date, o.StartTime),
		RelatedOrderID: o.ID,
	})

	return o, nil
}

// FromRequestInput: datos ya resueltos de una solicitud abierta aceptada.
type FromRequestInput struct {
	Dog         dogs.Dog
	OwnerUserID string
	Date        string
	TimeSlot    string
	ServiceType walkers.ServiceType
	Price       float64
}

// CreateFromRequest: el usuario actúa como paseador y acepta una solicitud
// del tablón. Produce exactamente una orden Pending con el perro y el precio
// de la solicitud.
func (s *Service) CreateFromRequest(ctx context.Context, walkerUserID string, in FromRequestInput) (Order, error) {
	if strings.TrimSpace(walkerUserID) == "" {
		return Order{}, ErrInvalidInput
	}

	walker, err := s.walkFinder.ProfileOf(ctx, walkerUserID)
	if err != nil {
		return Order{}, fmt.Errorf("walker profile lookup: %w", err)
	}

	// "12:00 - 14:00" -> la hora de inicio es la primera franja.
	startTime := in.TimeSlot
	if i := strings.Index(startTime, " - "); i >= 0 {
		startTime = startTime[:i]
	}

	now := s.now()
	o := Order{
		ID:              uuid.NewString(),
		Dog:             in.Dog,
		Walker:          walker,
		OwnerUserID:     in.OwnerUserID,
		Date:            strings.TrimSpace(in.Date),
		StartTime:       strings.TrimSpace(startTime),
		DurationMinutes: 60,
		ServiceType:     in.ServiceType,
		Status:          StatusPending,
		TotalCost:       in.Price,
		GPSTrack:        []GPS{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Order{}, err
	}

	s.notify(ctx, in.OwnerUserID, notifications.CreateInput{
		Kind:           notifications.KindBookingConfirmed,
		Title:          "Zgłoszenie przyjęte",
		Description:    fmt.Sprintf("%s przyjął Twoje zgłoszenie dla psa %s.", walker.User.FirstName, in.Dog.Name),
		RelatedOrderID: o.ID,
	})

	return o, nil
}

// Start arranca el paseo: Pending -> InProgress y contadores en cero.
// Si ya estaba InProgress es un no-op (NO resetea contadores).
func (s *Service) Start(ctx context.Context, id string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}

	if o.Status == StatusInProgress {
		return o, nil
	}
	if !CanTransition(o.Status, StatusInProgress) {
		return Order{}, ErrInvalidTransition
	}

	o.Status = StatusInProgress
	o.ElapsedSeconds = 0
	o.BaseDistanceKm = 0
	o.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}

	s.notify(ctx, o.OwnerUserID, notifications.CreateInput{
		Kind:           notifications.KindWalkStarted,
		Title:          "Spacer rozpoczęty",
		Description:    fmt.Sprintf("%s wyruszył z psem %s.", o.Walker.User.FirstName, o.Dog.Name),
		RelatedOrderID: o.ID,
	})

	return o, nil
}

// Finish termina el paseo y lo deja Completed en la colección compartida.
// (La versión original solo navegaba y nunca persistía el estado final;
// acá la transición es durable — decisión registrada en DESIGN.md.)
func (s *Service) Finish(ctx context.Context, id string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if !CanTransition(o.Status, StatusCompleted) {
		return Order{}, ErrInvalidTransition
	}

	o.Status = StatusCompleted
	o.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}

	s.notify(ctx, o.OwnerUserID, notifications.CreateInput{
		Kind:           notifications.KindWalkFinished,
		Title:          "Spacer zakończony",
		Description:    fmt.Sprintf("%s wrócił z psem %s. Dystans: %.2f km.", o.Walker.User.FirstName, o.Dog.Name, o.DistanceKm()),
		RelatedOrderID: o.ID,
	})

	return o, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if !CanTransition(o.Status, StatusCancelled) {
		return Order{}, ErrInvalidTransition
	}

	o.Status = StatusCancelled
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Tick suma un segundo al contador (lo llama el simulador de tracking).
func (s *Service) Tick(ctx context.Context, id string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if o.Status != StatusInProgress {
		return o, ErrNotInProgress
	}

	o.ElapsedSeconds++
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// AppendGPS agrega una muestra al track (solo con la orden InProgress).
func (s *Service) AppendGPS(ctx context.Context, id string, sample GPS) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if o.Status != StatusInProgress {
		return o, ErrNotInProgress
	}

	o.GPSTrack = append(o.GPSTrack, sample)
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// LogActivity registra una actividad del paseo y avisa al dueño.
func (s *Service) LogActivity(ctx context.Context, id string, kind ActivityKind, label string) (Order, error) {
	if !ValidActivityKind(kind) {
		return Order{}, ErrInvalidInput
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if o.Status != StatusInProgress {
		return o, ErrNotInProgress
	}

	now := s.now()
	o.Activities = append(o.Activities, WalkActivity{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: now,
		Label:     strings.TrimSpace(label),
	})
	o.UpdatedAt = now

	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}

	if kind != ActivityStart {
		s.notify(ctx, o.OwnerUserID, notifications.CreateInput{
			Kind:           notifications.KindDogActivity,
			Title:          fmt.Sprintf("%s: nowa aktywność", o.Dog.Name),
			Description:    strings.TrimSpace(label),
			RelatedOrderID: o.ID,
			ActivityKind:   notifications.ActivityKind(kind),
		})
	}

	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Order{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByParticipant(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByParticipant(ctx, userID)
}

// History: solo las órdenes terminales (la vista de historial).
func (s *Service) History(ctx context.Context, userID string) ([]Order, error) {
	all, err := s.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0, len(all))
	for _, o := range all {
		if o.Status.Terminal() {
			out = append(out, o)
		}
	}
	return out, nil
}

// DogInUse implementa dogs.OrderGuard: el perro está comprometido si alguna
// orden no terminal lo referencia.
func (s *Service) DogInUse(ctx context.Context, dogID string) (bool, error) {
	list, err := s.repo.ListByDog(ctx, dogID)
	if err != nil {
		return false, err
	}
	for _, o := range list {
		if !o.Status.Terminal() {
			return true, nil
		}
	}
	return false, nil
}

// FirstRelevantOrderID implementa session.OrderFinder: al navegar a live sin
// orden activa se adopta la primera InProgress, si no la primera Pending.
func (s *Service) FirstRelevantOrderID(ctx context.Context, userID string) (string, bool) {
	list, err := s.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return "", false
	}
	for _, o := range list {
		if o.Status == StatusInProgress {
			return o.ID, true
		}
	}
	for _, o := range list {
		if o.Status == StatusPending {
			return o.ID, true
		}
	}
	return "", false
}

func (s *Service) notify(ctx context.Context, userID string, in notifications.CreateInput) {
	if s.notifier == nil {
		return
	}
	// Una notificación que falla no debe voltear la operación principal.
	_, _ = s.notifier.Push(ctx, userID, in)
}
