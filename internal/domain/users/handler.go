package users

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/middleware"
	"doggo-marketplace/internal/platform/images"

	"github.com/go-chi/chi/v5"
)

// maxAvatarBytes limita la carga del avatar (se guarda inline como data URL).
const maxAvatarBytes = 2 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me", func(mr chi.Router) {
		mr.Get("/", getMeHandler(svc))
		mr.Patch("/", updateMeHandler(svc))
		mr.Get("/wallet", walletHandler(svc))
		mr.Post("/avatar", uploadAvatarHandler(svc))
	})
}

type userResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Image         string    `json:"image,omitempty"`
	Roles         []Role    `json:"roles"`
	WalletBalance float64   `json:"wallet_balance"`
	WalkerTier    string    `json:"walker_tier,omitempty"`
	TierLabel     string    `json:"tier_label,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type updateMeRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Image      *string `json:"image"`
	WalkerTier *string `json:"walker_tier"`
}

// getMeHandler devuelve el perfil del usuario autenticado.
// @Summary Perfil actual
// @Tags me
// @Produce json
// @Success 200 {object} userResponse
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateMeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Image:     req.Image,
		}
		if req.WalkerTier != nil {
			t := Tier(strings.TrimSpace(*req.WalkerTier))
			in.WalkerTier = &t
		}

		u, err := svc.UpdatePersonal(r.Context(), claims.UserID, in)
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func walletHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		balance, err := svc.WalletBalance(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]float64{"wallet_balance": balance})
	}
}

// uploadAvatarHandler recibe los bytes crudos de la imagen y los guarda
// embebidos como data URL (no hay upload a un storage externo).
func uploadAvatarHandler(svc *Service) http.HandlerFunc {
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
		u, err := svc.UpdatePersonal(r.Context(), claims.UserID, UpdateInput{Image: &dataURL})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Image:         u.Image,
		Roles:         u.Roles,
		WalletBalance: u.WalletBalance,
		WalkerTier:    string(u.WalkerTier),
		TierLabel:     u.WalkerTier.Label(),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo;
// todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
