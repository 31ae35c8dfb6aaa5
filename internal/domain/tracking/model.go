package tracking

import "time"

// State es la foto del rastreo en vivo de una orden: lo que se publica a los
// suscriptores del stream y lo que devuelve el endpoint de consulta.
type State struct {
	OrderID string

	Latitude  float64
	Longitude float64

	ElapsedSeconds int
	DistanceKm     float64

	Running bool

	MapEmbedURL string

	UpdatedAt time.Time
}
