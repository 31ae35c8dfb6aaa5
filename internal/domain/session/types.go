package session

import "strings"

// Screen es el conjunto cerrado de pantallas de la app.
// Reemplaza el "tab string" original por un enum explícito; los tokens con
// sufijo (search:find-dog, personal-data-walker) se parsean a un Target con
// el dato auxiliar como campo propio.
type Screen string

const (
	ScreenHome          Screen = "home"
	ScreenSearch        Screen = "search"
	ScreenLive          Screen = "live"
	ScreenProfile       Screen = "profile"
	ScreenLocationsMap  Screen = "locations-map"
	ScreenSupport       Screen = "support"
	ScreenTerms         Screen = "terms"
	ScreenNotifications Screen = "notifications"
	ScreenHistory       Screen = "history"
	ScreenPersonalData  Screen = "personal-data"
	ScreenGPSSettings   Screen = "gps-settings"
	ScreenDogList       Screen = "dog-list"
	ScreenAddDog        Screen = "add-dog"
	ScreenEditDog       Screen = "edit-dog"
	ScreenAddRequest    Screen = "add-request"
	ScreenRequestList   Screen = "request-list"
	ScreenAddressList   Screen = "address-list"
	ScreenEditAddress   Screen = "edit-address"
	ScreenBooking       Screen = "booking"
	ScreenPublicProfile Screen = "public-profile"
	ScreenChat          Screen = "chat"
)

func ValidScreen(s Screen) bool {
	switch s {
	case ScreenHome, ScreenSearch, ScreenLive, ScreenProfile, ScreenLocationsMap,
		ScreenSupport, ScreenTerms, ScreenNotifications, ScreenHistory,
		ScreenPersonalData, ScreenGPSSettings, ScreenDogList, ScreenAddDog,
		ScreenEditDog, ScreenAddRequest, ScreenRequestList, ScreenAddressList,
		ScreenEditAddress, ScreenBooking, ScreenPublicProfile, ScreenChat:
		return true
	default:
		return false
	}
}

// fullScreenSet: pantallas que se renderizan sin el shell (top bar + tabs).
var fullScreenSet = map[Screen]struct{}{
	ScreenAddDog:        {},
	ScreenPersonalData:  {},
	ScreenGPSSettings:   {},
	ScreenDogList:       {},
	ScreenEditDog:       {},
	ScreenAddressList:   {},
	ScreenEditAddress:   {},
	ScreenBooking:       {},
	ScreenPublicProfile: {},
	ScreenChat:          {},
	ScreenHistory:       {},
	ScreenNotifications: {},
	ScreenLocationsMap:  {},
	ScreenSupport:       {},
	ScreenTerms:         {},
	ScreenAddRequest:    {},
	ScreenRequestList:   {},
}

// IsFullScreen indica si la pantalla se dibuja fuera del shell.
func IsFullScreen(s Screen) bool {
	_, ok := fullScreenSet[s]
	return ok
}

// SearchMode es el modo inicial de la pantalla de búsqueda.
type SearchMode string

const (
	SearchFindWalker SearchMode = "find-walker"
	SearchFindDog    SearchMode = "find-dog"
)

// ProfileRole es la faceta inicial de la pantalla de datos personales.
type ProfileRole string

const (
	RoleOwner  ProfileRole = "owner"
	RoleWalker ProfileRole = "walker"
)

// Target es un destino de navegación con sus datos auxiliares explícitos.
type Target struct {
	Screen      Screen
	SearchMode  SearchMode
	ProfileRole ProfileRole

	// Payloads de selección según pantalla destino.
	DogID     string
	AddressID string
	WalkerID  string
	PartnerID string
	OrderID   string
}

// ParseTarget convierte un token legacy de navegación en un Target tipado.
// Tokens con sufijo capturan el dato auxiliar; un token desconocido cae a home.
func ParseTarget(raw string) Target {
	raw = strings.TrimSpace(raw)

	switch raw {
	case "search:find-dog":
		return Target{Screen: ScreenSearch, SearchMode: SearchFindDog}
	case "search":
		return Target{Screen: ScreenSearch, SearchMode: SearchFindWalker}
	case "personal-data-walker":
		return Target{Screen: ScreenPersonalData, ProfileRole: RoleWalker}
	case "personal-data":
		return Target{Screen: ScreenPersonalData, ProfileRole: RoleOwner}
	}

	s := Screen(raw)
	if !ValidScreen(s) {
		return Target{Screen: ScreenHome}
	}
	return Target{Screen: s}
}
