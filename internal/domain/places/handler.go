package places

import (
	"encoding/json"
	"net/http"

	"doggo-marketplace/internal/adapters/maps/osm"

	"github.com/go-chi/chi/v5"
)

// MapLinker arma links de mapa para un punto. Lo implementa el adapter OSM.
type MapLinker interface {
	EmbedURL(lat, lng float64, zoom int) string
	DirectionsURL(lat, lng float64) string
}

func RegisterRoutes(r chi.Router, svc *Service, maps MapLinker) {
	r.Route("/places", func(rr chi.Router) {
		rr.Get("/", listPlacesHandler(svc, maps))
		rr.Get("/{placeID}", getPlaceHandler(svc, maps))
	})
}

type placeResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Type    PlaceType `json:"type"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Phone   string    `json:"phone"`
	Rating  float64   `json:"rating"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`

	PhoneURL      string `json:"phone_url,omitempty"`
	MapEmbedURL   string `json:"map_embed_url"`
	DirectionsURL string `json:"directions_url"`
}

// listPlacesHandler lista el directorio, opcionalmente filtrado.
// @Summary Directorio de lugares para perros
// @Tags places
// @Produce json
// @Param type query string false "veterinary | pet_shop | animal_shelter"
// @Param city query string false "filtrar por ciudad"
// @Success 200 {array} placeResponse
// @Router /places [get]
func listPlacesHandler(svc *Service, maps MapLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := ListFilter{
			Type: PlaceType(r.URL.Query().Get("type")),
			City: r.URL.Query().Get("city"),
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, "invalid place type", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]placeResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPlaceResponse(p, maps))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPlaceHandler(svc *Service, maps MapLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "placeID"))
		if err != nil {
			http.Error(w, "place not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPlaceResponse(p, maps))
	}
}

func toPlaceResponse(p Place, maps MapLinker) placeResponse {
	return placeResponse{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Address:       p.Address,
		City:          p.City,
		Phone:         p.Phone,
		Rating:        p.Rating,
		Lat:           p.Lat,
		Lng:           p.Lng,
		PhoneURL:      osm.TelURL(p.Phone),
		MapEmbedURL:   maps.EmbedURL(p.Lat, p.Lng, 16),
		DirectionsURL: maps.DirectionsURL(p.Lat, p.Lng),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
