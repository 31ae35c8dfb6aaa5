package session

import (
	"encoding/json"
	"net/http"
	"strings"

	"doggo-marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", getSessionHandler(svc))
		sr.Post("/navigate", navigateHandler(svc))
	})
}

type sessionResponse struct {
	ActiveScreen      Screen      `json:"active_screen"`
	FullScreen        bool        `json:"full_screen"`
	SearchMode        SearchMode  `json:"search_mode"`
	ProfileRole       ProfileRole `json:"profile_role"`
	SelectedDogID     string      `json:"selected_dog_id,omitempty"`
	SelectedAddressID string      `json:"selected_address_id,omitempty"`
	BookingWalkerID   string      `json:"booking_walker_id,omitempty"`
	ViewingWalkerID   string      `json:"viewing_walker_id,omitempty"`
	ChatPartnerID     string      `json:"chat_partner_id,omitempty"`
	ActiveOrderID     string      `json:"active_order_id,omitempty"`
}

type navigateRequest struct {
	// Target acepta el token legacy ("search:find-dog", "personal-data-walker")
	// o el nombre plano de la pantalla; los campos tipados tienen prioridad.
	Target      string `json:"target"`
	SearchMode  string `json:"search_mode"`
	ProfileRole string `json:"profile_role"`
	DogID       string `json:"dog_id"`
	AddressID   string `json:"address_id"`
	WalkerID    string `json:"walker_id"`
	PartnerID   string `json:"partner_id"`
	OrderID     string `json:"order_id"`
}

// getSessionHandler devuelve la sesión de navegación actual.
// @Summary Estado de navegación
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess, err := svc.Current(claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

func navigateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t := ParseTarget(req.Target)
		if req.SearchMode != "" {
			t.SearchMode = SearchMode(req.SearchMode)
		}
		if req.ProfileRole != "" {
			t.ProfileRole = ProfileRole(req.ProfileRole)
		}
		t.DogID = strings.TrimSpace(req.DogID)
		t.AddressID = strings.TrimSpace(req.AddressID)
		t.WalkerID = strings.TrimSpace(req.WalkerID)
		t.PartnerID = strings.TrimSpace(req.PartnerID)
		t.OrderID = strings.TrimSpace(req.OrderID)

		sess, err := svc.Navigate(r.Context(), claims.UserID, t)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

func toSessionResponse(s Session) sessionResponse {
	return sessionResponse{
		ActiveScreen:      s.ActiveScreen,
		FullScreen:        s.FullScreen(),
		SearchMode:        s.SearchMode,
		ProfileRole:       s.ProfileRole,
		SelectedDogID:     s.SelectedDogID,
		SelectedAddressID: s.SelectedAddressID,
		BookingWalkerID:   s.BookingWalkerID,
		ViewingWalkerID:   s.ViewingWalkerID,
		ChatPartnerID:     s.ChatPartnerID,
		ActiveOrderID:     s.ActiveOrderID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
