package requests

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

func RegisterRoutes(r chi.Router, svc *Service, nav *session.Service) {
	r.Route("/requests", func(rr chi.Router) {
		rr.Post("/", addRequestHandler(svc, nav))
		rr.Get("/", listMyRequestsHandler(svc))
		rr.Get("/board", listBoardHandler(svc))
		rr.Delete("/{requestID}", deleteRequestHandler(svc))
		rr.Post("/{requestID}/accept", acceptRequestHandler(svc, nav))
	})
}

type addRequestRequest struct {
	DogID        string   `json:"dog_id"`
	Date         string   `json:"date"`
	TimeSlot     string   `json:"time_slot"`
	ServiceTypes []string `json:"service_types"`
	Price        float64  `json:"price"`
	AddressID    string   `json:"address_id"`
}

type requestResponse struct {
	ID            string    `json:"id"`
	DogID         string    `json:"dog_id"`
	DogName       string    `json:"dog_name"`
	DogBreed      string    `json:"dog_breed"`
	DogImage      string    `json:"dog_image,omitempty"`
	OwnerUserID   string    `json:"owner_user_id"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"time_slot"`
	ServiceTypes  []string  `json:"service_types"`
	Price         float64   `json:"price"`
	AddressID     string    `json:"address_id"`
	LocationLabel string    `json:"location_label"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// addRequestHandler publica un aviso y navega a home.
// @Summary Publicar solicitud de paseo
// @Tags requests
// @Accept json
// @Produce json
// @Success 201 {object} requestResponse
// @Router /requests [post]
func addRequestHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		types := make([]walkers.ServiceType, 0, len(req.ServiceTypes))
		for _, t := range req.ServiceTypes {
			types = append(types, walkers.ServiceType(strings.TrimSpace(t)))
		}

		created, err := svc.Add(r.Context(), claims.UserID, AddInput{
			DogID:        req.DogID,
			Date:         req.Date,
			TimeSlot:     req.TimeSlot,
			ServiceTypes: types,
			Price:        req.Price,
			AddressID:    req.AddressID,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotOwner:
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		nav.AfterRequestMutation(claims.UserID)
		writeJSON(w, http.StatusCreated, toRequestResponse(created))
	}
}

func listMyRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponses(items))
	}
}

// listBoardHandler: tablón público de avisos activos (modo "buscar perro").
func listBoardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListOpen(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponses(items))
	}
}

func deleteRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "requestID")); err != nil {
			if err == ErrNotOwner {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, "request not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func acceptRequestHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		o, err := svc.Accept(r.Context(), claims.UserID, chi.URLParam(r, "requestID"))
		if err != nil {
			switch err {
			case ErrNotActive, ErrOwnRequest:
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "request not found", http.StatusNotFound)
			}
			return
		}

		nav.AfterRequestMutation(claims.UserID)
		writeJSON(w, http.StatusCreated, map[string]string{"order_id": o.ID})
	}
}

func toRequestResponses(items []Request) []requestResponse {
	out := make([]requestResponse, 0, len(items))
	for _, req := range items {
		out = append(out, toRequestResponse(req))
	}
	return out
}

func toRequestResponse(req Request) requestResponse {
	types := make([]string, 0, len(req.ServiceTypes))
	for _, t := range req.ServiceTypes {
		types = append(types, string(t))
	}
	return requestResponse{
		ID:            req.ID,
		DogID:         req.Dog.ID,
		DogName:       req.Dog.Name,
		DogBreed:      req.Dog.Breed,
		DogImage:      req.Dog.Image,
		OwnerUserID:   req.OwnerUserID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		ServiceTypes:  types,
		Price:         req.Price,
		AddressID:     req.AddressID,
		LocationLabel: req.LocationLabel,
		Status:        req.Status,
		CreatedAt:     req.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
