package router

import (
	"context"
	"database/sql"
	"math/rand"
	"net/http"
	"os"
	"time"

	"doggo-marketplace/internal/adapters/geo/sim"
	"doggo-marketplace/internal/adapters/maps/osm"
	mem "doggo-marketplace/internal/adapters/storage/memory"
	pg "doggo-marketplace/internal/adapters/storage/postgres"
	_ "doggo-marketplace/internal/docs"
	"doggo-marketplace/internal/domain/addresses"
	"doggo-marketplace/internal/domain/chat"
	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/notifications"
	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/domain/places"
	"doggo-marketplace/internal/domain/requests"
	"doggo-marketplace/internal/domain/session"
	"doggo-marketplace/internal/domain/tracking"
	"doggo-marketplace/internal/domain/users"
	"doggo-marketplace/internal/domain/walkers"
	"doggo-marketplace/internal/middleware"
	"doggo-marketplace/internal/platform/logger"
	"doggo-marketplace/internal/ports/auth"
	"doggo-marketplace/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger"
)

// requestTTL: los avisos del tablón expiran pasado un día sin ser tomados.
const requestTTL = 24 * time.Hour

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, dogs/addresses/orders/requests van a Postgres.
	// Si no, todo in-memory con el seed demo.
	DB *sql.DB

	// Opcional: gating de features premium. nil = sin gating.
	Capabilities capabilities.CapabilitiesResolver

	Logger logger.Logger
}

// NewRouter arma la app completa. La función de cleanup corta el cron de
// expiración y las corridas de tracking activas; llamarla en el shutdown.
func NewRouter(opts Options) (http.Handler, func()) {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	store := mem.NewSeededStore()

	var (
		dogRepo     dogs.Repository      = store.Dogs
		addrRepo    addresses.Repository = store.Addresses
		orderRepo   orders.Repository    = store.Orders
		requestRepo requests.Repository  = store.Requests
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		dogRepo = pg.NewDogsRepo(db)
		addrRepo = pg.NewAddressesRepo(db)
		orderRepo = pg.NewOrdersRepo(db)
		requestRepo = pg.NewRequestsRepo(db)
	}

	// Services por módulo. Dogs/session se construyen sin sus dependencias
	// circulares y se conectan después (ver SetGuard/SetFinder).
	usersSvc := users.NewService(store.Users)
	walkersSvc := walkers.NewService(store.Walkers)
	notifSvc := notifications.NewService(store.Notifications)
	dogsSvc := dogs.NewService(dogRepo, nil)
	addrSvc := addresses.NewService(addrRepo)
	sessionSvc := session.NewService(nil)
	ordersSvc := orders.NewService(orderRepo, dogsSvc, walkersSvc, notifSvc)
	requestsSvc := requests.NewService(requestRepo, dogsSvc, addrSvc, ordersSvc)
	chatSvc := chat.NewService(store.Chat)
	placesSvc := places.NewService(store.Places)

	dogsSvc.SetGuard(ordersSvc)
	sessionSvc.SetFinder(ordersSvc)

	linker := osm.NewLinkBuilder()
	trackingSvc := tracking.NewService(ordersSvc, linker, log, rand.Float64)
	locator := sim.NewLocator()

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	walkers.RegisterRoutes(r, walkersSvc)
	notifications.RegisterRoutes(r, notifSvc)
	dogs.RegisterRoutes(r, dogsSvc, sessionSvc)
	addresses.RegisterRoutes(r, addrSvc, sessionSvc)
	session.RegisterRoutes(r, sessionSvc)
	orders.RegisterRoutes(r, ordersSvc, trackingSvc, sessionSvc)
	requests.RegisterRoutes(r, requestsSvc, sessionSvc)
	chat.RegisterRoutes(r, chatSvc, sessionSvc)
	places.RegisterRoutes(r, placesSvc, linker)
	tracking.RegisterRoutes(r, trackingSvc, locator, opts.Capabilities)

	// Barrido horario de avisos viejos del tablón.
	c := cron.New()
	_, _ = c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := requestsSvc.ExpireStale(ctx, requestTTL)
		if err != nil {
			log.Error("request expiry sweep failed", map[string]any{"error": err.Error()})
			return
		}
		if n > 0 {
			log.Info("expired stale requests", map[string]any{"count": n})
		}
	})
	c.Start()

	cleanup := func() {
		c.Stop()
		trackingSvc.StopAll()
	}

	return r, cleanup
}
