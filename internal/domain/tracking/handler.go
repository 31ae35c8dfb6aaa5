package tracking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/middleware"
	"doggo-marketplace/internal/ports/capabilities"
	"doggo-marketplace/internal/ports/geo"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, locator geo.Locator, caps capabilities.CapabilitiesResolver) {
	r.Route("/gps", func(gr chi.Router) {
		gr.Get("/settings", getSettingsHandler(svc))
		gr.Put("/settings", updateSettingsHandler(svc, caps))
		gr.Post("/locate", locateHandler(svc, locator))
	})

	r.Get("/orders/{orderID}/track", trackStateHandler(svc))
	r.Get("/orders/{orderID}/track/ws", streamHandler(svc))
}

type settingsPayload struct {
	HighAccuracy       bool `json:"high_accuracy"`
	BackgroundTracking bool `json:"background_tracking"`
	BatterySaving      bool `json:"battery_saving"`
	IntervalSeconds    int  `json:"interval_seconds"`
}

type stateResponse struct {
	OrderID        string    `json:"order_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	DistanceKm     float64   `json:"distance_km"`
	Running        bool      `json:"running"`
	MapEmbedURL    string    `json:"map_embed_url"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsPayload(svc.SettingsFor(claims.UserID)))
	}
}

// updateSettingsHandler guarda ajustes GPS. Las opciones premium (alta
// precisión, rastreo en segundo plano) se validan contra el plan del usuario
// si hay resolver configurado.
// @Summary Actualizar ajustes GPS
// @Tags tracking
// @Accept json
// @Produce json
// @Success 200 {object} settingsPayload
// @Router /gps/settings [put]
func updateSettingsHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req settingsPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if caps != nil {
			checks := map[string]bool{
				capabilities.CapHighAccuracy:       req.HighAccuracy,
				capabilities.CapBackgroundTracking: req.BackgroundTracking,
			}
			for capability, wanted := range checks {
				if !wanted {
					continue
				}
				has, err := caps.HasFeature(r.Context(), capabilities.CapabilityCheck{
					UserID:     claims.UserID,
					Capability: capability,
				})
				if err != nil {
					http.Error(w, "capability check failed", http.StatusBadGateway)
					return
				}
				if !has {
					http.Error(w, "plan does not include "+capability, http.StatusForbidden)
					return
				}
			}
		}

		saved := svc.UpdateSettings(claims.UserID, Settings{
			HighAccuracy:       req.HighAccuracy,
			BackgroundTracking: req.BackgroundTracking,
			BatterySaving:      req.BatterySaving,
			IntervalSeconds:    req.IntervalSeconds,
		})
		writeJSON(w, http.StatusOK, toSettingsPayload(saved))
	}
}

type locateResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	AccuracyM float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
}

// locateHandler pide una lectura puntual al proveedor de geolocalización,
// con los ajustes del usuario.
func locateHandler(svc *Service, locator geo.Locator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st := svc.SettingsFor(claims.UserID)
		reading, err := locator.Current(r.Context(), geo.Config{
			HighAccuracy: st.HighAccuracy,
			Timeout:      10 * time.Second,
			MaxAge:       time.Minute,
		})
		if err != nil {
			switch {
			case errors.Is(err, geo.ErrPermissionDenied):
				http.Error(w, err.Error(), http.StatusForbidden)
			case errors.Is(err, geo.ErrTimeout):
				http.Error(w, err.Error(), http.StatusGatewayTimeout)
			default:
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
			}
			return
		}

		writeJSON(w, http.StatusOK, locateResponse{
			Latitude:  reading.Latitude,
			Longitude: reading.Longitude,
			AccuracyM: reading.AccuracyM,
			Timestamp: reading.Timestamp,
		})
	}
}

func trackStateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.StateOf(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

func toSettingsPayload(s Settings) settingsPayload {
	return settingsPayload{
		HighAccuracy:       s.HighAccuracy,
		BackgroundTracking: s.BackgroundTracking,
		BatterySaving:      s.BatterySaving,
		IntervalSeconds:    s.IntervalSeconds,
	}
}

func toStateResponse(st State) stateResponse {
	return stateResponse{
		OrderID:        st.OrderID,
		Latitude:       st.Latitude,
		Longitude:      st.Longitude,
		ElapsedSeconds: st.ElapsedSeconds,
		DistanceKm:     st.DistanceKm,
		Running:        st.Running,
		MapEmbedURL:    st.MapEmbedURL,
		UpdatedAt:      st.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
