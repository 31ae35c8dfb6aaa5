package session

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// OrderFinder busca la orden "relevante" cuando se navega a live sin una orden
// activa: primero una InProgress, si no hay una Pending. Lo implementa orders.
type OrderFinder interface {
	FirstRelevantOrderID(ctx context.Context, userID string) (string, bool)
}

// Service es el dueño del estado de navegación por usuario.
type Service struct {
	mu     sync.RWMutex
	byUser map[string]*Session
	finder OrderFinder // puede ser nil (live queda sin orden: estado vacío)
}

func NewService(finder OrderFinder) *Service {
	return &Service{
		byUser: make(map[string]*Session),
		finder: finder,
	}
}

// SetFinder conecta el buscador de órdenes después de construir orders
// (session se instancia primero porque los handlers de orders lo usan).
func (s *Service) SetFinder(finder OrderFinder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finder = finder
}

// Current devuelve la sesión del usuario (creándola en home si no existía).
func (s *Service) Current(userID string) (Session, error) {
	if strings.TrimSpace(userID) == "" {
		return Session{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.sessionLocked(userID), nil
}

// Navigate aplica una transición de pantalla:
//  1. captura los payloads auxiliares del target en las selecciones
//  2. si el destino es live sin orden activa, adopta la orden relevante
//  3. si falta la selección que el destino exige, redirige a una pantalla segura
//  4. limpia las selecciones de la pantalla que se abandona
func (s *Service) Navigate(ctx context.Context, userID string, t Target) (Session, error) {
	if strings.TrimSpace(userID) == "" {
		return Session{}, ErrInvalidInput
	}
	if !ValidScreen(t.Screen) {
		t.Screen = ScreenHome
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	prev := sess.ActiveScreen

	// 1. payloads auxiliares
	switch t.Screen {
	case ScreenSearch:
		if t.SearchMode == "" {
			t.SearchMode = SearchFindWalker
		}
		sess.SearchMode = t.SearchMode
	case ScreenPersonalData:
		if t.ProfileRole == "" {
			t.ProfileRole = RoleOwner
		}
		sess.ProfileRole = t.ProfileRole
	case ScreenEditDog:
		if t.DogID != "" {
			sess.SelectedDogID = t.DogID
		}
	case ScreenEditAddress:
		// Sin payload significa alta nueva: la selección se limpia.
		sess.SelectedAddressID = t.AddressID
	case ScreenBooking:
		if t.WalkerID != "" {
			sess.BookingWalkerID = t.WalkerID
		}
	case ScreenPublicProfile:
		if t.WalkerID != "" {
			sess.ViewingWalkerID = t.WalkerID
		}
	case ScreenChat:
		if t.PartnerID != "" {
			sess.ChatPartnerID = t.PartnerID
		}
	case ScreenLive:
		if t.OrderID != "" {
			sess.ActiveOrderID = t.OrderID
		} else if sess.ActiveOrderID == "" && s.finder != nil {
			// 2. adopción: InProgress primero, si no Pending
			if id, ok := s.finder.FirstRelevantOrderID(ctx, userID); ok {
				sess.ActiveOrderID = id
			}
			// Sin órdenes igual se transiciona: live renderiza estado vacío.
		}
	}

	// 3. precondición de selección: redirigir a un default seguro en vez de
	// dejar una pantalla en blanco.
	switch t.Screen {
	case ScreenEditDog:
		if sess.SelectedDogID == "" {
			t.Screen = ScreenDogList
		}
	case ScreenBooking:
		if sess.BookingWalkerID == "" {
			t.Screen = ScreenSearch
		}
	case ScreenPublicProfile:
		if sess.ViewingWalkerID == "" {
			t.Screen = ScreenSearch
		}
	case ScreenChat:
		if sess.ChatPartnerID == "" {
			t.Screen = ScreenHome
		}
	}

	// 4. selecciones de la pantalla que se deja
	clearOnLeave(sess, prev, t.Screen)

	sess.ActiveScreen = t.Screen
	return *sess, nil
}

// clearOnLeave limpia cada selección cuando se abandona la pantalla que la
// necesitaba. El contexto de reserva (booking walker) sobrevive al desvío por
// public-profile y chat, que forman parte del mismo flujo.
func clearOnLeave(sess *Session, prev, next Screen) {
	if prev == next {
		return
	}

	if prev == ScreenEditDog && next != ScreenEditDog {
		sess.SelectedDogID = ""
	}
	if prev == ScreenEditAddress && next != ScreenEditAddress {
		sess.SelectedAddressID = ""
	}

	inBookingFlow := func(sc Screen) bool {
		return sc == ScreenBooking || sc == ScreenPublicProfile || sc == ScreenChat
	}
	if inBookingFlow(prev) && !inBookingFlow(next) {
		sess.BookingWalkerID = ""
	}
	if prev == ScreenPublicProfile && next != ScreenPublicProfile && next != ScreenChat {
		sess.ViewingWalkerID = ""
	}
	if prev == ScreenChat && next != ScreenChat {
		sess.ChatPartnerID = ""
	}
}

// --- transiciones post-operación (contrato §controller: mutación + navegación) ---

// AfterDogMutation: guardar/borrar perro vuelve a la lista y limpia la selección.
func (s *Service) AfterDogMutation(userID string) {
	s.apply(userID, func(sess *Session) {
		sess.SelectedDogID = ""
		sess.ActiveScreen = ScreenDogList
	})
}

// AfterAddressMutation: guardar/borrar dirección vuelve a la lista y limpia la selección.
func (s *Service) AfterAddressMutation(userID string) {
	s.apply(userID, func(sess *Session) {
		sess.SelectedAddressID = ""
		sess.ActiveScreen = ScreenAddressList
	})
}

// AfterRequestMutation: publicar o aceptar una solicitud navega a home.
func (s *Service) AfterRequestMutation(userID string) {
	s.apply(userID, func(sess *Session) {
		sess.ActiveScreen = ScreenHome
	})
}

// AfterBookingCreated: confirmar reserva navega a home y suelta al paseador.
func (s *Service) AfterBookingCreated(userID string) {
	s.apply(userID, func(sess *Session) {
		sess.BookingWalkerID = ""
		sess.ActiveScreen = ScreenHome
	})
}

// FocusOrder: ver o arrancar una orden la vuelve activa y navega a live.
func (s *Service) FocusOrder(userID, orderID string) {
	s.apply(userID, func(sess *Session) {
		sess.ActiveOrderID = orderID
		sess.ActiveScreen = ScreenLive
	})
}

// OpenChat fija el interlocutor y navega al chat.
func (s *Service) OpenChat(userID, partnerID string) {
	s.apply(userID, func(sess *Session) {
		sess.ChatPartnerID = partnerID
		sess.ActiveScreen = ScreenChat
	})
}

// BookingWalker devuelve el paseador seleccionado para reservar (si hay).
func (s *Service) BookingWalker(userID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byUser[userID]
	if !ok {
		return ""
	}
	return sess.BookingWalkerID
}

func (s *Service) apply(userID string, fn func(*Session)) {
	if strings.TrimSpace(userID) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.sessionLocked(userID))
}

func (s *Service) sessionLocked(userID string) *Session {
	sess, ok := s.byUser[userID]
	if !ok {
		sess = newSession(userID)
		s.byUser[userID] = sess
	}
	return sess
}
