package walkers

import "doggo-marketplace/internal/domain/users"

// ServiceType son los servicios contratables en el marketplace.
type ServiceType string

const (
	ServiceWalk       ServiceType = "walk"
	ServiceFeeding    ServiceType = "feeding"
	ServicePlay       ServiceType = "play"
	ServiceStay       ServiceType = "stay"
	ServiceCarry      ServiceType = "carry"
	ServiceVetCare    ServiceType = "veterinary_care"
)

func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceWalk, ServiceFeeding, ServicePlay, ServiceStay, ServiceCarry, ServiceVetCare:
		return true
	default:
		return false
	}
}

// AllowedForTier implementa el gating por nivel:
// - lover: servicios básicos (paseo, comida, juego, transporte)
// - animator: además opieka estacionaria (stay)
// - vet: además cuidado veterinario
func AllowedForTier(tier users.Tier, t ServiceType) bool {
	if !ValidServiceType(t) {
		return false
	}
	switch t {
	case ServiceStay:
		return tier.Rank() >= users.TierAnimator.Rank()
	case ServiceVetCare:
		return tier.Rank() >= users.TierVet.Rank()
	default:
		return tier.Rank() >= users.TierLover.Rank()
	}
}
