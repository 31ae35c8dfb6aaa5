package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mem "doggo-marketplace/internal/adapters/storage/memory"
	"doggo-marketplace/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, cleanup := router.NewRouter(router.Options{AuthVerifier: nil})
	t.Cleanup(cleanup)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_BookingLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Anna ve sus perros del seed
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing dogs, got %d body=%s", st, string(body))
		}
		var dogs []struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &dogs)
		if len(dogs) != 2 {
			t.Fatalf("expected 2 seeded dogs, got %d", len(dogs))
		}
	}

	// 2) Registra a Rex
	rexID := createDog(t, ts.URL, mem.SeedUserAnna, map[string]any{
		"name":  "Rex",
		"breed": "Labrador",
		"age":   4,
		"image": "https://images.doggo.example/dogs/rex.jpg",
	})

	// 3) Busca paseadores que ofrezcan paseo
	{
		st, body := doReq(t, ts.URL, "GET", "/walkers?service=walk", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing walkers, got %d body=%s", st, string(body))
		}
		var walkers []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &walkers)
		found := false
		for _, wk := range walkers {
			if wk.ID == mem.SeedWalkerMarek {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s among walkers, body=%s", mem.SeedWalkerMarek, string(body))
		}
	}

	// 4) Reserva sin precio explícito => tarifa del paseador (50/h de Marek)
	var orderID string
	{
		st, body := doReq(t, ts.URL, "POST", "/orders", mem.SeedUserAnna, map[string]any{
			"dog_id":       rexID,
			"walker_id":    mem.SeedWalkerMarek,
			"service_type": "walk",
			"date":         "2026-09-02",
			"time":         "11:00",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 booking, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID        string  `json:"id"`
			Status    string  `json:"status"`
			TotalCost float64 `json:"total_cost"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID == "" || resp.Status != "Pending" {
			t.Fatalf("unexpected booking response: %s", string(body))
		}
		if resp.TotalCost != 50 {
			t.Fatalf("expected suggested price 50, got %v", resp.TotalCost)
		}
		orderID = resp.ID
	}

	// 5) Arrancar dos veces es idempotente
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "POST", "/orders/"+orderID+"/start", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 start (try %d), got %d body=%s", i+1, st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "InProgress" {
			t.Fatalf("expected InProgress after start, got %s", resp.Status)
		}
	}

	// 6) Registrar actividad durante el paseo
	{
		st, body := doReq(t, ts.URL, "POST", "/orders/"+orderID+"/activities", mem.SeedUserAnna, map[string]any{
			"kind":  "poop",
			"label": "Rex zrobił kupę",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 logging activity, got %d body=%s", st, string(body))
		}
	}

	// 7) Con la orden en curso, Rex no se puede borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/dogs/"+rexID, mem.SeedUserAnna, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 deleting dog with active order, got %d", st)
		}
	}

	// 8) Terminar el paseo: queda Completed y aparece en el historial
	{
		st, body := doReq(t, ts.URL, "POST", "/orders/"+orderID+"/finish", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 finish, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "Completed" {
			t.Fatalf("expected Completed after finish, got %s", resp.Status)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/orders/history", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
		}
		var hist []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &hist)
		found := false
		for _, h := range hist {
			if h.ID == orderID {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected finished order in history, body=%s", string(body))
		}
	}

	// 9) El dueño recibió las notificaciones del ciclo
	{
		st, body := doReq(t, ts.URL, "GET", "/notifications", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 notifications, got %d body=%s", st, string(body))
		}
		var notifs []struct {
			Kind string `json:"kind"`
		}
		_ = json.Unmarshal(body, &notifs)
		kinds := map[string]bool{}
		for _, n := range notifs {
			kinds[n.Kind] = true
		}
		for _, want := range []string{"booking_confirmed", "walk_started", "walk_finished", "dog_activity"} {
			if !kinds[want] {
				t.Fatalf("missing %q notification, body=%s", want, string(body))
			}
		}
	}

	// 10) Sin órdenes activas, Rex ya se puede borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/dogs/"+rexID, mem.SeedUserAnna, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting dog after finish, got %d", st)
		}
	}
}

func TestHTTP_RequestBoard_AcceptFlow(t *testing.T) {
	ts := newTestServer(t)

	// El tablón público trae los avisos del seed
	{
		st, body := doReq(t, ts.URL, "GET", "/requests/board", mem.SeedUserMarek, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 board, got %d body=%s", st, string(body))
		}
		var reqs []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &reqs)
		if len(reqs) < 2 {
			t.Fatalf("expected seeded requests on board, got %d", len(reqs))
		}
	}

	// El dueño no puede tomar su propio aviso
	{
		st, _ := doReq(t, ts.URL, "POST", "/requests/"+mem.SeedRequestMax+"/accept", mem.SeedUserPiotr, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 accepting own request, got %d", st)
		}
	}

	// Marek lo toma: sale una orden Pending con el precio del aviso
	var orderID string
	{
		st, body := doReq(t, ts.URL, "POST", "/requests/"+mem.SeedRequestMax+"/accept", mem.SeedUserMarek, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 accept, got %d body=%s", st, string(body))
		}
		var resp struct {
			OrderID string `json:"order_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.OrderID == "" {
			t.Fatalf("accept: missing order_id body=%s", string(body))
		}
		orderID = resp.OrderID
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/orders/"+orderID, mem.SeedUserMarek, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get order, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status    string  `json:"status"`
			TotalCost float64 `json:"total_cost"`
			DogID     string  `json:"dog_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "Pending" || resp.TotalCost != 45 || resp.DogID != mem.SeedDogMax {
			t.Fatalf("unexpected accepted order: %s", string(body))
		}
	}

	// Un aviso cubierto no se puede volver a tomar
	{
		st, _ := doReq(t, ts.URL, "POST", "/requests/"+mem.SeedRequestMax+"/accept", mem.SeedUserJulia, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 accepting filled request, got %d", st)
		}
	}

	// El dueño lo sigue viendo, ahora Filled
	{
		st, body := doReq(t, ts.URL, "GET", "/requests", mem.SeedUserPiotr, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my requests, got %d body=%s", st, string(body))
		}
		var reqs []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &reqs)
		found := false
		for _, rq := range reqs {
			if rq.ID == mem.SeedRequestMax && rq.Status == "Filled" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s Filled in owner view, body=%s", mem.SeedRequestMax, string(body))
		}
	}
}

func TestHTTP_Session_LiveAdoptsRunningWalk(t *testing.T) {
	ts := newTestServer(t)

	// Navegar a live sin orden activa adopta el paseo en curso del seed
	{
		st, body := doReq(t, ts.URL, "POST", "/session/navigate", mem.SeedUserAnna, map[string]any{
			"target": "live",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 navigate, got %d body=%s", st, string(body))
		}
		var resp struct {
			ActiveScreen  string `json:"active_screen"`
			ActiveOrderID string `json:"active_order_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ActiveScreen != "live" || resp.ActiveOrderID != mem.SeedOrderInProgress {
			t.Fatalf("expected live with adopted order %s, body=%s", mem.SeedOrderInProgress, string(body))
		}
	}

	// Token legacy con sufijo
	{
		st, body := doReq(t, ts.URL, "POST", "/session/navigate", mem.SeedUserAnna, map[string]any{
			"target": "search:find-dog",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 navigate, got %d body=%s", st, string(body))
		}
		var resp struct {
			ActiveScreen string `json:"active_screen"`
			SearchMode   string `json:"search_mode"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ActiveScreen != "search" || resp.SearchMode != "find-dog" {
			t.Fatalf("expected search/find-dog, body=%s", string(body))
		}
	}

	// Token desconocido cae a home
	{
		st, body := doReq(t, ts.URL, "POST", "/session/navigate", mem.SeedUserAnna, map[string]any{
			"target": "no-such-screen",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 navigate, got %d body=%s", st, string(body))
		}
		var resp struct {
			ActiveScreen string `json:"active_screen"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ActiveScreen != "home" {
			t.Fatalf("expected home for unknown target, body=%s", string(body))
		}
	}
}

func TestHTTP_Tracking_StateAndSettings(t *testing.T) {
	ts := newTestServer(t)

	// Estado del paseo en curso del seed
	{
		st, body := doReq(t, ts.URL, "GET", "/orders/"+mem.SeedOrderInProgress+"/track", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 track state, got %d body=%s", st, string(body))
		}
		var resp struct {
			Latitude    float64 `json:"latitude"`
			MapEmbedURL string  `json:"map_embed_url"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Latitude == 0 || resp.MapEmbedURL == "" {
			t.Fatalf("unexpected track state: %s", string(body))
		}
	}

	// Ajustes GPS: defaults y actualización (sin resolver, sin gating)
	{
		st, body := doReq(t, ts.URL, "GET", "/gps/settings", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 settings, got %d body=%s", st, string(body))
		}
		var resp struct {
			IntervalSeconds int `json:"interval_seconds"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.IntervalSeconds != 10 {
			t.Fatalf("expected default interval 10, got %d", resp.IntervalSeconds)
		}
	}
	{
		st, body := doReq(t, ts.URL, "PUT", "/gps/settings", mem.SeedUserAnna, map[string]any{
			"high_accuracy":    true,
			"battery_saving":   true,
			"interval_seconds": 5,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update settings, got %d body=%s", st, string(body))
		}
		var resp struct {
			BatterySaving   bool `json:"battery_saving"`
			IntervalSeconds int  `json:"interval_seconds"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.BatterySaving || resp.IntervalSeconds != 5 {
			t.Fatalf("unexpected settings: %s", string(body))
		}
	}

	// Lectura puntual del proveedor simulado (cerca de Rzeszów)
	{
		st, body := doReq(t, ts.URL, "POST", "/gps/locate", mem.SeedUserAnna, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 locate, got %d body=%s", st, string(body))
		}
		var resp struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Latitude < 49.9 || resp.Latitude > 50.2 || resp.Longitude < 21.8 || resp.Longitude > 22.2 {
			t.Fatalf("reading far from base point: %s", string(body))
		}
	}
}

func createDog(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create dog: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
