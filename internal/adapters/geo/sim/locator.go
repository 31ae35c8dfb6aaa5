// Package sim es el proveedor de geolocalización simulado: devuelve
// posiciones alrededor de un punto base con un poco de ruido. Es el único
// proveedor mientras la app no recibe posiciones reales de los dispositivos.
package sim

import (
	"context"
	"math/rand"
	"time"

	"doggo-marketplace/internal/ports/geo"
)

// Punto base: centro de Rzeszów.
const (
	baseLat = 50.0411
	baseLng = 21.9991
)

type Locator struct {
	rnd func() float64
	now func() time.Time
}

func NewLocator() *Locator {
	return &Locator{
		rnd: rand.Float64,
		now: time.Now,
	}
}

// Current simula una lectura. Con HighAccuracy el ruido y el error reportado
// son menores.
func (l *Locator) Current(ctx context.Context, cfg geo.Config) (geo.Reading, error) {
	select {
	case <-ctx.Done():
		return geo.Reading{}, geo.ErrTimeout
	default:
	}

	noise := 0.001
	accuracy := 25.0
	if cfg.HighAccuracy {
		noise = 0.0002
		accuracy = 5.0
	}

	return geo.Reading{
		Latitude:  baseLat + (l.rnd()-0.5)*noise,
		Longitude: baseLng + (l.rnd()-0.5)*noise,
		AccuracyM: accuracy,
		Timestamp: l.now(),
	}, nil
}
