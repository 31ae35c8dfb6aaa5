package users

// Role define los roles que puede tener un usuario dentro de DogGo.
type Role string

const (
	RoleRegistered Role = "registered_user"
	RoleDogOwner   Role = "dog_owner"
	RoleDogWalker  Role = "dog_walker"
	RoleAdmin      Role = "admin"
)

// Tier es el nivel de capacidad de un paseador (ordenado: lover < animator < vet).
type Tier string

const (
	TierLover    Tier = "lover"
	TierAnimator Tier = "animator"
	TierVet      Tier = "vet"
)

// Rank devuelve el orden del tier (0 si es desconocido o vacío).
func (t Tier) Rank() int {
	switch t {
	case TierLover:
		return 1
	case TierAnimator:
		return 2
	case TierVet:
		return 3
	default:
		return 0
	}
}

// Label devuelve el nombre comercial del tier (en polaco, mercado original).
func (t Tier) Label() string {
	switch t {
	case TierLover:
		return "Psi miłośnik"
	case TierAnimator:
		return "Psi Animator"
	case TierVet:
		return "Psi Zbawiciel - Weterynarz"
	default:
		return ""
	}
}

func ValidTier(t Tier) bool {
	return t.Rank() > 0
}

func HasRole(u User, r Role) bool {
	for _, x := range u.Roles {
		if x == r {
			return true
		}
	}
	return false
}
