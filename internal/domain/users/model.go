package users

import "time"

// User representa la cuenta visible en la app (dueño y/o paseador).
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string

	// Image es una URL o un data URL embebido (avatar subido desde el dispositivo).
	Image string

	Roles []Role

	// WalletBalance en la moneda local (demo: sin pagos reales).
	WalletBalance float64

	// WalkerTier solo aplica si el usuario tiene RoleDogWalker.
	WalkerTier Tier

	CreatedAt time.Time
	UpdatedAt time.Time
}
