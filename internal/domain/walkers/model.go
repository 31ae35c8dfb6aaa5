package walkers

import "doggo-marketplace/internal/domain/users"

// Profile es el perfil público de un paseador.
// Embebe un snapshot del User para que las vistas no hagan un segundo lookup.
type Profile struct {
	ID     string
	UserID string
	User   users.User

	Bio        string
	Experience string

	Rating       float64
	ReviewsCount int
	IsVerified   bool

	AvailableServices []ServiceType
	Tier              users.Tier
	HourlyRate        float64
}

// Offers indica si el perfil ofrece el servicio dado.
func (p Profile) Offers(t ServiceType) bool {
	for _, s := range p.AvailableServices {
		if s == t {
			return true
		}
	}
	return false
}
