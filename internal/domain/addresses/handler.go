package addresses

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/domain/session"
	"doggo-marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, nav *session.Service) {
	r.Route("/addresses", func(ar chi.Router) {
		ar.Post("/", saveAddressHandler(svc, nav))
		ar.Get("/", listAddressesHandler(svc))
		ar.Put("/{addressID}", saveAddressHandler(svc, nav))
		ar.Delete("/{addressID}", deleteAddressHandler(svc, nav))
		ar.Post("/{addressID}/primary", setPrimaryHandler(svc))
	})
}

type saveAddressRequest struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	IsPrimary  bool   `json:"is_primary"`
	Notes      string `json:"notes"`
}

type addressResponse struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	IsPrimary  bool      `json:"is_primary"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// saveAddressHandler sirve alta (POST sin id) y edición (PUT con id).
// @Summary Guardar dirección
// @Tags addresses
// @Accept json
// @Produce json
// @Success 200 {object} addressResponse
// @Router /addresses [post]
func saveAddressHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req saveAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Save(r.Context(), claims.UserID, SaveInput{
			ID:         chi.URLParam(r, "addressID"),
			Label:      req.Label,
			Street:     req.Street,
			City:       req.City,
			PostalCode: req.PostalCode,
			IsPrimary:  req.IsPrimary,
			Notes:      req.Notes,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotOwner:
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "address not found", http.StatusNotFound)
			}
			return
		}

		nav.AfterAddressMutation(claims.UserID)

		status := http.StatusOK
		if r.Method == http.MethodPost {
			status = http.StatusCreated
		}
		writeJSON(w, status, toAddressResponse(a))
	}
}

func listAddressesHandler(svc *Service) http.HandlerFunc {
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

		out := make([]addressResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAddressResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteAddressHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "addressID")); err != nil {
			if err == ErrNotOwner {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, "address not found", http.StatusNotFound)
			return
		}

		nav.AfterAddressMutation(claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// setPrimaryHandler no navega: la lista se queda donde está.
func setPrimaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.SetPrimary(r.Context(), claims.UserID, chi.URLParam(r, "addressID")); err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotOwner:
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "address not found", http.StatusNotFound)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAddressResponse(a Address) addressResponse {
	return addressResponse{
		ID:         a.ID,
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		IsPrimary:  a.IsPrimary,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
