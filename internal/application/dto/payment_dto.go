package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddPaymentRequest body para POST /api/invoices/:invoiceId/payments.
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`           // cash | bank | card
	PaidAt string          `json:"paidAt,omitempty"` // fecha calendario opcional, 2006-01-02
}

// PaymentResponse pago en respuestas, con el número de factura denormalizado
// para la tabla de pagos.
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoiceId"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaidAt        string          `json:"paidAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
