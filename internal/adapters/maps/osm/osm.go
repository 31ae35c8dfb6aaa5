// Package osm arma URLs públicas de OpenStreetMap. No hay llamadas de red:
// los links se abren en el cliente.
package osm

import (
	"fmt"
	"math"
	"strings"
)

type LinkBuilder struct{}

func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{}
}

// EmbedURL devuelve el iframe de export/embed.html centrado en el punto.
// El bbox se deriva del zoom: medio grado de lado a zoom 12, y se achica a
// la mitad por cada nivel extra.
func (b *LinkBuilder) EmbedURL(lat, lng float64, zoom int) string {
	if zoom < 1 {
		zoom = 15
	}
	half := 0.05 / math.Pow(2, float64(zoom-12)) / 2

	return fmt.Sprintf(
		"https://www.openstreetmap.org/export/embed.html?bbox=%.6f%%2C%.6f%%2C%.6f%%2C%.6f&layer=mapnik&marker=%.6f%%2C%.6f",
		lng-half, lat-half, lng+half, lat+half, lat, lng,
	)
}

// DirectionsURL abre direcciones a pie hasta el punto.
func (b *LinkBuilder) DirectionsURL(lat, lng float64) string {
	return fmt.Sprintf(
		"https://www.openstreetmap.org/directions?engine=fossgis_osrm_foot&route=%%3B%.6f%%2C%.6f",
		lat, lng,
	)
}

// TelURL arma un link tel: quitando separadores del número.
func TelURL(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if cleaned == "" {
		return ""
	}
	return "tel:" + cleaned
}
