package entity

import "time"

// Client representa un cliente al que se le factura.
// Solo Name es obligatorio; el resto de campos son datos de contacto opcionales.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
