package walkers

import (
	"encoding/json"
	"net/http"
	"strings"

	"doggo-marketplace/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/walkers", func(wr chi.Router) {
		wr.Get("/", listWalkersHandler(svc))
		wr.Get("/{walkerID}", getWalkerHandler(svc))
	})
}

type profileResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Image        string        `json:"image,omitempty"`
	Bio          string        `json:"bio"`
	Experience   string        `json:"experience"`
	Rating       float64       `json:"rating"`
	ReviewsCount int           `json:"reviews_count"`
	IsVerified   bool          `json:"is_verified"`
	Services     []ServiceType `json:"available_services"`
	Tier         string        `json:"tier"`
	TierLabel    string        `json:"tier_label"`
	HourlyRate   float64       `json:"hourly_rate"`
}

// listWalkersHandler lista el directorio (con filtros de búsqueda).
// @Summary Buscar paseadores
// @Tags walkers
// @Produce json
// @Param service query string false "tipo de servicio"
// @Param min_tier query string false "tier mínimo"
// @Success 200 {array} profileResponse
// @Router /walkers [get]
func listWalkersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := ListFilter{
			Service: ServiceType(strings.TrimSpace(r.URL.Query().Get("service"))),
			MinTier: users.Tier(strings.TrimSpace(r.URL.Query().Get("min_tier"))),
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]profileResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProfileResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getWalkerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "walkerID"))
		if err != nil {
			http.Error(w, "walker not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		FirstName:    p.User.FirstName,
		LastName:     p.User.LastName,
		Image:        p.User.Image,
		Bio:          p.Bio,
		Experience:   p.Experience,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		IsVerified:   p.IsVerified,
		Services:     p.AvailableServices,
		Tier:         string(p.Tier),
		TierLabel:    p.Tier.Label(),
		HourlyRate:   p.HourlyRate,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
