package orders

import (
	"math"

	"doggo-marketplace/internal/domain/walkers"
)

// Quote calcula el precio sugerido de una reserva a partir de la tarifa
// horaria del paseador:
//   - walk (y cualquier otro servicio simple): tarifa x1
//   - stay: tarifa x1.5
//   - veterinary_care: tarifa x2
//   - stay + cuidado médico combinado: suma tarifa x0.8 extra
//
// Se redondea a entero, igual que el precio sugerido del formulario.
func Quote(hourlyRate float64, service walkers.ServiceType, combinedMedical bool) float64 {
	multiplier := 1.0
	switch service {
	case walkers.ServiceStay:
		multiplier = 1.5
	case walkers.ServiceVetCare:
		multiplier = 2.0
	}

	total := hourlyRate * multiplier

	if service == walkers.ServiceStay && combinedMedical {
		total += hourlyRate * 0.8
	}

	return math.Round(total)
}
