package addresses

import "time"

// Address es una dirección del dueño (casa, oficina...).
// Invariante: a lo sumo una dirección por dueño tiene IsPrimary = true.
type Address struct {
	ID          string
	OwnerUserID string

	Label      string
	Street     string
	City       string
	PostalCode string

	IsPrimary bool

	// Notes: indicaciones para el cuidador (código del portero, etc).
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
