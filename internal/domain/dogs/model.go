package dogs

import "time"

// Dog es el perfil de un perro registrado por su dueño.
type Dog struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string
	Age   int

	// Image es obligatoria al crear (data URL embebido o URL externa).
	Image string
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
