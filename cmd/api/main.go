package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doggo-marketplace/internal/adapters/auth/gateway"
	"doggo-marketplace/internal/adapters/capabilities/plans"
	"doggo-marketplace/internal/platform/logger"
	"doggo-marketplace/internal/ports/auth"
	"doggo-marketplace/internal/ports/capabilities"
	"doggo-marketplace/internal/router"

	"github.com/joho/godotenv"
)

// @title DogGo API
// @version 1.0
// @description Marketplace de paseos y cuidado de perros.
// @BasePath /
func main() {
	// .env es opcional; en producción todo viene del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var verifier auth.AuthVerifier
	if base := os.Getenv("AUTH_GATEWAY_URL"); base != "" {
		client, err := gateway.NewClient(gateway.Config{
			BaseURL: base,
			APIKey:  os.Getenv("AUTH_GATEWAY_API_KEY"),
		})
		if err != nil {
			log.Error("invalid auth gateway config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = gateway.NewVerifier(client)
	} else {
		log.Warn("auth gateway not configured, running in dev mode (X-Debug-User-ID)", nil)
	}

	var caps capabilities.CapabilitiesResolver
	if base := os.Getenv("PLANS_URL"); base != "" {
		client, err := plans.NewClient(plans.Config{
			BaseURL: base,
			APIKey:  os.Getenv("PLANS_API_KEY"),
		})
		if err != nil {
			log.Error("invalid plans config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		caps = plans.NewResolver(client)
	}

	r, cleanup := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Capabilities: caps,
		Logger:       log,
	})
	defer cleanup()

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("shutting down", map[string]any{"signal": sig.String()})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown error", map[string]any{"error": err.Error()})
		}
	}
}
