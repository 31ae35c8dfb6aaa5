package orders

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/domain/session"
	"doggo-marketplace/internal/domain/walkers"
	"doggo-marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Tracker arranca/frena la simulación de tracking de una orden.
// Lo implementa el módulo tracking (que importa orders, por eso acá es interfaz).
type Tracker interface {
	StartRun(orderID, userID string)
	StopRun(orderID string)
}

func RegisterRoutes(r chi.Router, svc *Service, tracker Tracker, nav *session.Service) {
	r.Route("/orders", func(or chi.Router) {
		or.Post("/", createBookingHandler(svc, nav))
		or.Get("/", listOrdersHandler(svc))
		or.Get("/history", historyHandler(svc))
		or.Get("/{orderID}", getOrderHandler(svc))
		or.Post("/{orderID}/view", viewOrderHandler(svc, nav))
		or.Post("/{orderID}/start", startOrderHandler(svc, tracker, nav))
		or.Post("/{orderID}/finish", finishOrderHandler(svc, tracker))
		or.Post("/{orderID}/cancel", cancelOrderHandler(svc, tracker))
		or.Post("/{orderID}/activities", logActivityHandler(svc))
	})
}

type createBookingRequest struct {
	DogID           string  `json:"dog_id"`
	WalkerID        string  `json:"walker_id"` // opcional: cae a la selección de la sesión
	ServiceType     string  `json:"service_type"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Price           float64 `json:"price"`
	CombinedMedical bool    `json:"combined_medical"`
}

type logActivityRequest struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type gpsResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
}

type orderResponse struct {
	ID              string             `json:"id"`
	DogID           string             `json:"dog_id"`
	DogName         string             `json:"dog_name"`
	DogImage        string             `json:"dog_image,omitempty"`
	WalkerID        string             `json:"walker_id"`
	WalkerName      string             `json:"walker_name"`
	Date            string             `json:"date"`
	StartTime       string             `json:"start_time"`
	DurationMinutes int                `json:"duration_minutes"`
	ServiceType     string             `json:"service_type"`
	Status          Status             `json:"status"`
	TotalCost       float64            `json:"total_cost"`
	ElapsedSeconds  int                `json:"elapsed_seconds"`
	DistanceKm      float64            `json:"distance_km"`
	GPSTrack        []gpsResponse      `json:"gps_track"`
	Activities      []activityResponse `json:"activities,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// createBookingHandler confirma una reserva con el paseador seleccionado.
// Si el body no trae walker_id se usa la selección de la sesión; sin ninguna
// de las dos se responde 409 (en vez de la pantalla en blanco original).
// @Summary Confirmar reserva
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} orderResponse
// @Router /orders [post]
func createBookingHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		walkerID := strings.TrimSpace(req.WalkerID)
		if walkerID == "" {
			walkerID = nav.BookingWalker(claims.UserID)
		}
		if walkerID == "" {
			http.Error(w, ErrNoWalkerSelected.Error(), http.StatusConflict)
			return
		}

		o, err := svc.CreateBooking(r.Context(), claims.UserID, BookingInput{
			DogID:           req.DogID,
			WalkerID:        walkerID,
			ServiceType:     walkers.ServiceType(req.ServiceType),
			Date:            req.Date,
			Time:            req.Time,
			Price:           req.Price,
			CombinedMedical: req.CombinedMedical,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrServiceNotOffered:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNoWalkerSelected:
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "booking failed", http.StatusBadRequest)
			}
			return
		}

		nav.AfterBookingCreated(claims.UserID)
		writeJSON(w, http.StatusCreated, toOrderResponse(o))
	}
}

func listOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByParticipant(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponses(items))
	}
}

func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.History(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponses(items))
	}
}

func getOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

// viewOrderHandler fija la orden activa y navega a live (sin tocar el estado).
func viewOrderHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		nav.FocusOrder(claims.UserID, o.ID)
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func startOrderHandler(svc *Service, tracker Tracker, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		o, err := svc.Start(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			if err == ErrInvalidTransition {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		if tracker != nil {
			tracker.StartRun(o.ID, claims.UserID)
		}
		nav.FocusOrder(claims.UserID, o.ID)
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func finishOrderHandler(svc *Service, tracker Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Finish(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			if err == ErrInvalidTransition {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		if tracker != nil {
			tracker.StopRun(o.ID)
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func cancelOrderHandler(svc *Service, tracker Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Cancel(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			if err == ErrInvalidTransition {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		if tracker != nil {
			tracker.StopRun(o.ID)
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func logActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.LogActivity(r.Context(), chi.URLParam(r, "orderID"), ActivityKind(req.Kind), req.Label)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotInProgress:
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "order not found", http.StatusNotFound)
			}
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func toOrderResponses(items []Order) []orderResponse {
	out := make([]orderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toOrderResponse(o Order) orderResponse {
	track := make([]gpsResponse, 0, len(o.GPSTrack))
	for _, g := range o.GPSTrack {
		track = append(track, gpsResponse{Latitude: g.Latitude, Longitude: g.Longitude, Timestamp: g.Timestamp})
	}

	acts := make([]activityResponse, 0, len(o.Activities))
	for _, a := range o.Activities {
		acts = append(acts, activityResponse{ID: a.ID, Kind: string(a.Kind), Timestamp: a.Timestamp, Label: a.Label})
	}

	return orderResponse{
		ID:              o.ID,
		DogID:           o.Dog.ID,
		DogName:         o.Dog.Name,
		DogImage:        o.Dog.Image,
		WalkerID:        o.Walker.ID,
		WalkerName:      o.Walker.User.FirstName + " " + o.Walker.User.LastName,
		Date:            o.Date,
		StartTime:       o.StartTime,
		DurationMinutes: o.DurationMinutes,
		ServiceType:     string(o.ServiceType),
		Status:          o.Status,
		TotalCost:       o.TotalCost,
		ElapsedSeconds:  o.ElapsedSeconds,
		DistanceKm:      o.DistanceKm(),
		GPSTrack:        track,
		Activities:      acts,
		CreatedAt:       o.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
