package requests

// Status de una solicitud abierta del tablón.
type Status string

const (
	StatusActive  Status = "Active"
	StatusFilled  Status = "Filled"
	StatusExpired Status = "Expired"
)
