package notifications

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/{notificationID}/read", markReadHandler(svc))
	})
}

type notificationResponse struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	IsRead         bool      `json:"is_read"`
	RelatedOrderID string    `json:"related_order_id,omitempty"`
	ActivityKind   string    `json:"activity_kind,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// listNotificationsHandler devuelve las notificaciones del usuario (nuevas primero).
// @Summary Listar notificaciones
// @Tags notifications
// @Produce json
// @Success 200 {array} notificationResponse
// @Router /notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toNotificationResponse(n))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		n, err := svc.MarkRead(r.Context(), claims.UserID, chi.URLParam(r, "notificationID"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrForbidden:
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "notification not found", http.StatusNotFound)
			}
			return
		}
		writeJSON(w, http.StatusOK, toNotificationResponse(n))
	}
}

func toNotificationResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:             n.ID,
		Kind:           n.Kind,
		Title:          n.Title,
		Description:    n.Description,
		IsRead:         n.IsRead,
		RelatedOrderID: n.RelatedOrderID,
		ActivityKind:   string(n.ActivityKind),
		CreatedAt:      n.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
