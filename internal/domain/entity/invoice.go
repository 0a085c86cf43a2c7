package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una factura. Los asigna siempre el servidor
// (DeriveStatus); ningún consumidor de la API los calcula por su cuenta.
const (
	StatusDraft   = "draft"   // Creada, sin enviar ni pagar
	StatusSent    = "sent"    // Enviada por correo al cliente
	StatusPartial = "partial" // Con pagos parciales registrados
	StatusPaid    = "paid"    // Saldada por completo
	StatusOverdue = "overdue" // Vencida con saldo pendiente
)

// Invoice representa la cabecera de una factura.
// Total y RemainingAmount son autoritativos: se recalculan y persisten en el
// servidor con cada mutación de ítems o pagos, nunca se aceptan del cliente.
type Invoice struct {
	ID              string
	Number          string // número legible derivado del timestamp de creación, ej. INV-1756358400000
	ClientID        string
	DueDate         time.Time
	Notes           string
	Status          string
	Total           decimal.Decimal
	RemainingAmount decimal.Decimal // Total - Σ pagos aplicados; nunca negativo
	SentAt          *time.Time      // nil mientras no se haya enviado por correo
	Items           []InvoiceItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvoiceItem una línea facturable: etiqueta libre, cantidad, precio unitario
// e IVA como porcentaje (0–100). El orden de las líneas se conserva para mostrar.
type InvoiceItem struct {
	ID         string
	InvoiceID  string
	Name       string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TaxPercent decimal.Decimal
	Position   int
}
