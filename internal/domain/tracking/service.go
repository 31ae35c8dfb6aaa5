package tracking

import (
	"context"
	"sync"
	"time"

	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/platform/logger"
)

// Orders: lo que el simulador necesita del módulo de órdenes.
type Orders interface {
	GetByID(ctx context.Context, id string) (orders.Order, error)
	Tick(ctx context.Context, id string) (orders.Order, error)
	AppendGPS(ctx context.Context, id string, sample orders.GPS) (orders.Order, error)
}

// MapLinker arma el iframe de mapa para el estado publicado.
type MapLinker interface {
	EmbedURL(lat, lng float64, zoom int) string
}

// Posición inicial del paseo cuando la orden todavía no tiene track.
const (
	startLat = 50.0411
	startLng = 21.9991
)

const mapZoom = 16

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Service simula el rastreo en vivo: por cada orden activa corre una
// goroutine que suma segundos y perturba la posición a intervalos.
type Service struct {
	orders Orders
	maps   MapLinker
	log    logger.Logger

	rnd func() float64
	now func() time.Time

	mu       sync.Mutex
	runs     map[string]*run
	settings map[string]Settings
	subs     map[string]map[chan State]struct{}
}

func NewService(ordersSvc Orders, maps MapLinker, log logger.Logger, rnd func() float64) *Service {
	return &Service{
		orders:   ordersSvc,
		maps:     maps,
		log:      log,
		rnd:      rnd,
		now:      time.Now,
		runs:     map[string]*run{},
		settings: map[string]Settings{},
		subs:     map[string]map[chan State]struct{}{},
	}
}

// SettingsFor devuelve los ajustes GPS del usuario (defaults si nunca guardó).
func (s *Service) SettingsFor(userID string) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.settings[userID]; ok {
		return st
	}
	return DefaultSettings()
}

func (s *Service) UpdateSettings(userID string, st Settings) Settings {
	st = st.Normalize()
	s.mu.Lock()
	s.settings[userID] = st
	s.mu.Unlock()
	return st
}

// StartRun lanza la simulación para la orden. Idempotente: si ya hay una
// corrida activa no arranca otra. El intervalo de muestreo sale de los
// ajustes del usuario que arrancó el paseo.
func (s *Service) StartRun(orderID, userID string) {
	s.mu.Lock()
	if _, ok := s.runs[orderID]; ok {
		s.mu.Unlock()
		return
	}

	st, ok := s.settings[userID]
	if !ok {
		st = DefaultSettings()
	}
	interval := time.Duration(st.IntervalSeconds) * time.Second
	if st.BatterySaving {
		interval *= 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &run{cancel: cancel, done: make(chan struct{})}
	s.runs[orderID] = r
	s.mu.Unlock()

	s.log.Info("tracking run started", map[string]any{
		"order_id": orderID,
		"interval": interval.String(),
	})

	go s.loop(ctx, orderID, interval, r)
}

func (s *Service) StopRun(orderID string) {
	s.mu.Lock()
	r, ok := s.runs[orderID]
	if ok {
		delete(s.runs, orderID)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	r.cancel()
	<-r.done
	s.log.Info("tracking run stopped", map[string]any{"order_id": orderID})
}

// StopAll corta todas las corridas activas (shutdown del servidor).
func (s *Service) StopAll() {
	s.mu.Lock()
	active := make([]string, 0, len(s.runs))
	for id := range s.runs {
		active = append(active, id)
	}
	s.mu.Unlock()

	for _, id := range active {
		s.StopRun(id)
	}
}

// Subscribe registra un canal que recibe cada State publicado para la orden.
// El canal tiene buffer; si el suscriptor se atrasa, se descartan estados
// intermedios. Devuelve la función para desuscribirse.
func (s *Service) Subscribe(orderID string) (<-chan State, func()) {
	ch := make(chan State, 8)

	s.mu.Lock()
	if s.subs[orderID] == nil {
		s.subs[orderID] = map[chan State]struct{}{}
	}
	s.subs[orderID][ch] = struct{}{}
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		if set, ok := s.subs[orderID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(s.subs, orderID)
			}
		}
		s.mu.Unlock()
	}
	return ch, unsubscribe
}

// StateOf arma la foto actual del rastreo consultando la orden.
func (s *Service) StateOf(ctx context.Context, orderID string) (State, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return State{}, err
	}

	lat, lng := lastPosition(o)
	s.mu.Lock()
	_, running := s.runs[orderID]
	s.mu.Unlock()

	return State{
		OrderID:        o.ID,
		Latitude:       lat,
		Longitude:      lng,
		ElapsedSeconds: o.ElapsedSeconds,
		DistanceKm:     o.DistanceKm(),
		Running:        running,
		MapEmbedURL:    s.maps.EmbedURL(lat, lng, mapZoom),
		UpdatedAt:      s.now(),
	}, nil
}

func (s *Service) loop(ctx context.Context, orderID string, interval time.Duration, r *run) {
	defer close(r.done)

	elapsed := time.NewTicker(time.Second)
	defer elapsed.Stop()
	gps := time.NewTicker(interval)
	defer gps.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-elapsed.C:
			o, err := s.orders.Tick(ctx, orderID)
			if err != nil {
				// La orden dejó de estar en curso: la corrida muere sola.
				s.dropRun(orderID)
				return
			}
			s.publish(o)

		case <-gps.C:
			o, err := s.orders.GetByID(ctx, orderID)
			if err != nil {
				s.dropRun(orderID)
				return
			}
			lat, lng := lastPosition(o)
			next := nextSample(lat, lng, s.rnd, s.now())

			o, err = s.orders.AppendGPS(ctx, orderID, next)
			if err != nil {
				s.dropRun(orderID)
				return
			}
			s.publish(o)
		}
	}
}

func (s *Service) dropRun(orderID string) {
	s.mu.Lock()
	delete(s.runs, orderID)
	s.mu.Unlock()
}

func (s *Service) publish(o orders.Order) {
	lat, lng := lastPosition(o)
	st := State{
		OrderID:        o.ID,
		Latitude:       lat,
		Longitude:      lng,
		ElapsedSeconds: o.ElapsedSeconds,
		DistanceKm:     o.DistanceKm(),
		Running:        true,
		MapEmbedURL:    s.maps.EmbedURL(lat, lng, mapZoom),
		UpdatedAt:      s.now(),
	}

	s.mu.Lock()
	for ch := range s.subs[o.ID] {
		select {
		case ch <- st:
		default:
		}
	}
	s.mu.Unlock()
}

// nextSample perturba la posición con deriva hacia el noreste: el offset de
// latitud está sesgado (rnd-0.45) y el de longitud un poco más (rnd-0.4),
// así el paseo "avanza" en vez de vibrar en el lugar.
func nextSample(lat, lng float64, rnd func() float64, ts time.Time) orders.GPS {
	return orders.GPS{
		Latitude:  lat + (rnd()-0.45)*0.0003,
		Longitude: lng + (rnd()-0.4)*0.0003,
		Timestamp: ts,
	}
}

// lastPosition: última muestra del track, o el punto de partida fijo.
func lastPosition(o orders.Order) (float64, float64) {
	if n := len(o.GPSTrack); n > 0 {
		return o.GPSTrack[n-1].Latitude, o.GPSTrack[n-1].Longitude
	}
	return startLat, startLng
}
