// Package images guarda imágenes chicas (avatares) como data URLs, que es
// como la app las sirve al cliente. No hay storage de blobs aparte.
package images

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// ToDataURL arma un data URL detectando el content type de los bytes.
func ToDataURL(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	mime := http.DetectContentType(raw)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// IsImage valida que los bytes parezcan una imagen soportada.
func IsImage(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	return strings.HasPrefix(http.DetectContentType(raw), "image/")
}
