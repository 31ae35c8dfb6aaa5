package session

// Session es el estado de navegación de un usuario: en qué pantalla está y
// qué entidad tiene seleccionada cada pantalla que lo necesita.
// Es estado efímero de UI, vive solo en memoria.
type Session struct {
	UserID string

	ActiveScreen Screen
	SearchMode   SearchMode
	ProfileRole  ProfileRole

	SelectedDogID     string
	SelectedAddressID string
	BookingWalkerID   string
	ViewingWalkerID   string
	ChatPartnerID     string

	// ActiveOrderID no es una selección transitoria: sobrevive a los cambios
	// de pantalla (la orden en curso sigue siendo "la" orden del usuario).
	ActiveOrderID string
}

// FullScreen indica si la pantalla activa se renderiza sin el shell.
func (s Session) FullScreen() bool {
	return IsFullScreen(s.ActiveScreen)
}

func newSession(userID string) *Session {
	return &Session{
		UserID:       userID,
		ActiveScreen: ScreenHome,
		SearchMode:   SearchFindWalker,
		ProfileRole:  RoleOwner,
	}
}
