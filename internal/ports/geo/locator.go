package geo

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPermissionDenied = errors.New("geolocation permission denied")
	ErrUnavailable      = errors.New("geolocation position unavailable")
	ErrTimeout          = errors.New("geolocation timed out")
)

// Config replica las opciones clásicas de geolocalización.
type Config struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaxAge       time.Duration
}

// Reading es una posición obtenida del proveedor.
type Reading struct {
	Latitude  float64
	Longitude float64
	AccuracyM float64
	Timestamp time.Time
}

// Locator obtiene la posición actual del dispositivo del usuario.
type Locator interface {
	Current(ctx context.Context, cfg Config) (Reading, error)
}
