package dogs

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/domain/session"
	"doggo-marketplace/internal/middleware"
	"doggo-marketplace/internal/platform/images"

	"github.com/go-chi/chi/v5"
)

const maxAvatarBytes = 2 << 20

func RegisterRoutes(r chi.Router, svc *Service, nav *session.Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc, nav))
		dr.Get("/", listDogsHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Patch("/{dogID}", updateDogHandler(svc, nav))
		dr.Delete("/{dogID}", deleteDogHandler(svc, nav))
		dr.Post("/{dogID}/avatar", uploadDogAvatarHandler(svc))
	})
}

type createDogRequest struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
	Image string `json:"image"`
	Notes string `json:"notes"`
}

type updateDogRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name  *string `json:"name"`
	Breed *string `json:"breed"`
	Age   *int    `json:"age"`
	Image *string `json:"image"`
	Notes *string `json:"notes"`
}

type dogResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Image       string    `json:"image"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createDogHandler registra un perro y navega a la lista.
// @Summary Registrar perro
// @Tags dogs
// @Accept json
// @Produce json
// @Success 201 {object} dogResponse
// @Router /dogs [post]
func createDogHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:  req.Name,
			Breed: req.Breed,
			Age:   req.Age,
			Image: req.Image,
			Notes: req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		nav.AfterDogMutation(claims.UserID)
		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

func listDogsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func updateDogHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), claims.UserID, UpdateInput{
			Name:  req.Name,
			Breed: req.Breed,
			Age:   req.Age,
			Image: req.Image,
			Notes: req.Notes,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotOwner:
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "dog not found", http.StatusNotFound)
			}
			return
		}

		nav.AfterDogMutation(claims.UserID)
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler borra el perro. El servicio rechaza con 409 si el perro
// tiene una orden Pending/InProgress.
func deleteDogHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.Delete(r.Context(), chi.URLParam(r, "dogID"), claims.UserID)
		if err != nil {
			switch err {
			case ErrDogInUse:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrNotOwner:
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "dog not found", http.StatusNotFound)
			}
			return
		}

		nav.AfterDogMutation(claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadDogAvatarHandler recibe los bytes crudos de la foto y la guarda
// embebida como data URL en el perfil del perro.
func uploadDogAvatarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, maxAvatarBytes+1))
		if err != nil || len(raw) == 0 {
			http.Error(w, "empty image", http.StatusBadRequest)
			return
		}
		if len(raw) > maxAvatarBytes {
			http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
			return
		}

		dataURL := images.ToDataURL(raw)
		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), claims.UserID, UpdateInput{
			Image: &dataURL,
		})
		if err != nil {
			if err == ErrNotOwner {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:          d.ID,
		OwnerUserID: d.OwnerUserID,
		Name:        d.Name,
		Breed:       d.Breed,
		Age:         d.Age,
		Image:       d.Image,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
