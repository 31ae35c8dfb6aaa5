package chat

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
	r.Route("/chats/{partnerID}", func(rr chi.Router) {
		rr.Get("/messages", listMessagesHandler(svc, nav))
		rr.Post("/messages", sendMessageHandler(svc))
	})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	ID             string    `json:"id"`
	SenderUserID   string    `json:"sender_user_id"`
	ReceiverUserID string    `json:"receiver_user_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// listMessagesHandler además registra en sesión con quién se está chateando,
// para que "volver" desde el chat funcione igual que en el resto de la app.
func listMessagesHandler(svc *Service, nav *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		partnerID := chi.URLParam(r, "partnerID")
		items, err := svc.Conversation(r.Context(), claims.UserID, partnerID)
		if err != nil {
			http.Error(w, "invalid conversation", http.StatusBadRequest)
			return
		}

		nav.OpenChat(claims.UserID, partnerID)
		writeJSON(w, http.StatusOK, toMessageResponses(items))
	}
}

// sendMessageHandler envía un mensaje al interlocutor.
// @Summary Enviar mensaje de chat
// @Tags chat
// @Accept json
// @Produce json
// @Success 201 {object} messageResponse
// @Router /chats/{partnerID}/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Send(r.Context(), claims.UserID, chi.URLParam(r, "partnerID"), req.Text)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

func toMessageResponses(items []Message) []messageResponse {
	out := make([]messageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMessageResponse(m))
	}
	return out
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:             m.ID,
		SenderUserID:   m.SenderUserID,
		ReceiverUserID: m.ReceiverUserID,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
