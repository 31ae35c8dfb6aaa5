package requests

import (
	"time"

	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/walkers"
)

// Request es un aviso abierto publicado por un dueño buscando paseador.
// Dog es un snapshot (el aviso muestra al perro tal como se publicó).
type Request struct {
	ID string

	Dog         dogs.Dog
	OwnerUserID string

	Date     string
	TimeSlot string

	ServiceTypes []walkers.ServiceType
	Price        float64

	AddressID     string
	LocationLabel string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
