package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash = "cash"
	PaymentMethodBank = "bank"
	PaymentMethodCard = "card"
)

// ValidPaymentMethod indica si el método está dentro del catálogo aceptado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodCard:
		return true
	}
	return false
}

// Payment un abono registrado contra una factura. Una factura tiene N pagos;
// la suma de sus montos nunca supera el total de la factura.
type Payment struct {
	ID        string
	InvoiceID string
	Amount    decimal.Decimal
	Method    string
	PaidAt    *time.Time // fecha de pago declarada; opcional al registrar
	CreatedAt time.Time
}
