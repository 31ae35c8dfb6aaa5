package orders

import (
	"time"

	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/walkers"
)

// GPS es una muestra de posición tomada durante el paseo.
type GPS struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

// WalkActivity es un evento registrado durante el paseo.
type WalkActivity struct {
	ID        string
	Kind      ActivityKind
	Timestamp time.Time
	Label     string
}

// distanceDivisor: la distancia se deriva del tiempo transcurrido con un
// divisor fijo (segundos/800 ≈ km), NO se integra del track GPS. Es la
// aproximación deliberada del producto; cambiarla requiere decisión explícita.
const distanceDivisor = 800.0

// Order es un compromiso concreto entre un perro, su dueño y un paseador.
// Dog y Walker son snapshots: la orden es un registro histórico y no refleja
// ediciones posteriores del perro o del perfil.
type Order struct {
	ID string

	Dog    dogs.Dog
	Walker walkers.Profile

	// OwnerUserID del dueño del perro (para listar por participante).
	OwnerUserID string

	Date            string
	StartTime       string
	DurationMinutes int

	ServiceType walkers.ServiceType
	Status      Status
	TotalCost   float64

	// GPSTrack es append-only mientras la orden está InProgress.
	GPSTrack []GPS

	// Contadores en vivo (solo significativos desde que arranca el paseo).
	ElapsedSeconds int
	BaseDistanceKm float64

	Activities []WalkActivity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DistanceKm deriva la distancia del contador de tiempo.
func (o Order) DistanceKm() float64 {
	return o.BaseDistanceKm + float64(o.ElapsedSeconds)/distanceDivisor
}
