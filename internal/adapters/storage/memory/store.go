package memory

import (
	"errors"

	"doggo-marketplace/internal/domain/addresses"
	"doggo-marketplace/internal/domain/chat"
	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/notifications"
	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/domain/places"
	"doggo-marketplace/internal/domain/requests"
	"doggo-marketplace/internal/domain/users"
	"doggo-marketplace/internal/domain/walkers"
)

var ErrNotFound = errors.New("not found")

// Store agrupa todos los repos en memoria. Es el storage por defecto en dev
// y el respaldo cuando no hay DATABASE_URL.
type Store struct {
	Users         users.Repository
	Dogs          dogs.Repository
	Addresses     addresses.Repository
	Walkers       walkers.Repository
	Orders        orders.Repository
	Requests      requests.Repository
	Notifications notifications.Repository
	Chat          chat.Repository
	Places        places.Repository
}

// repos junta los tipos concretos; seed.go escribe directo sobre ellos.
type repos struct {
	users         *userRepo
	dogs          *dogRepo
	addresses     *addressRepo
	walkers       *walkerRepo
	orders        *orderRepo
	requests      *requestRepo
	notifications *notificationRepo
	chat          *chatRepo
	places        *placeRepo
}

func newRepos() repos {
	return repos{
		users:         newUserRepo(),
		dogs:          newDogRepo(),
		addresses:     newAddressRepo(),
		walkers:       newWalkerRepo(),
		orders:        newOrderRepo(),
		requests:      newRequestRepo(),
		notifications: newNotificationRepo(),
		chat:          newChatRepo(),
		places:        newPlaceRepo(),
	}
}

func (r repos) store() *Store {
	return &Store{
		Users:         r.users,
		Dogs:          r.dogs,
		Addresses:     r.addresses,
		Walkers:       r.walkers,
		Orders:        r.orders,
		Requests:      r.requests,
		Notifications: r.notifications,
		Chat:          r.chat,
		Places:        r.places,
	}
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return newRepos().store()
}

// NewSeededStore crea un Store con los datos demo (ver seed.go).
func NewSeededStore() *Store {
	r := newRepos()
	seed(r)
	return r.store()
}
