package tracking

// Settings de rastreo GPS por usuario.
type Settings struct {
	HighAccuracy       bool
	BackgroundTracking bool
	BatterySaving      bool

	// IntervalSeconds: cada cuánto se toma una muestra GPS.
	IntervalSeconds int
}

const DefaultIntervalSeconds = 10

func DefaultSettings() Settings {
	return Settings{
		HighAccuracy:    true,
		IntervalSeconds: DefaultIntervalSeconds,
	}
}

// Normalize deja el intervalo dentro de rangos sanos.
func (s Settings) Normalize() Settings {
	if s.IntervalSeconds <= 0 {
		s.IntervalSeconds = DefaultIntervalSeconds
	}
	if s.IntervalSeconds > 300 {
		s.IntervalSeconds = 300
	}
	return s
}
