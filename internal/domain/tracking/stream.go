package tracking

import (
	"net/http"
	"strings"
	"time"

	"doggo-marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// El front y la API corren en orígenes distintos en dev.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait = 10 * time.Second
	pingEvery = 30 * time.Second
)

// streamHandler empuja cada State de la orden por websocket. Al conectar
// manda la foto actual para que el cliente pinte el mapa sin esperar el
// primer tick.
func streamHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID := chi.URLParam(r, "orderID")
		if _, err := svc.StateOf(r.Context(), orderID); err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		states, unsubscribe := svc.Subscribe(orderID)
		defer unsubscribe()

		// Drenar lecturas para detectar el close del cliente.
		clientGone := make(chan struct{})
		go func() {
			defer close(clientGone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if st, err := svc.StateOf(r.Context(), orderID); err == nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(toStateResponse(st)); err != nil {
				return
			}
		}

		ping := time.NewTicker(pingEvery)
		defer ping.Stop()

		for {
			select {
			case <-clientGone:
				return

			case st, ok := <-states:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(toStateResponse(st)); err != nil {
					return
				}

			case <-ping.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
