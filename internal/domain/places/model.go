package places

// PlaceType clasifica lugares útiles para dueños de perros.
type PlaceType string

const (
	TypeVeterinary    PlaceType = "veterinary"
	TypePetShop       PlaceType = "pet_shop"
	TypeAnimalShelter PlaceType = "animal_shelter"
)

func ValidPlaceType(t PlaceType) bool {
	switch t {
	case TypeVeterinary, TypePetShop, TypeAnimalShelter:
		return true
	}
	return false
}

// Place es un lugar del directorio. Catálogo de solo lectura: se siembra al
// arrancar y no hay endpoints de escritura.
type Place struct {
	ID string

	Name    string
	Type    PlaceType
	Address string
	City    string
	Phone   string
	Rating  float64

	Lat float64
	Lng float64
}
