package capabilities

import "context"

// Capabilities conocidas por la app. El plan del usuario decide cuáles tiene.
const (
	CapBackgroundTracking = "gps:background-tracking"
	CapHighAccuracy       = "gps:high-accuracy"
)

type CapabilityCheck struct {
	UserID     string
	Capability string
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
