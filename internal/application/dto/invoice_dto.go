package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura tal como la envía el formulario:
// etiqueta libre, cantidad, precio unitario e IVA en porcentaje.
type InvoiceItemRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
}

// CreateInvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// El total NO viene del cliente: se recalcula siempre en el servidor.
type CreateInvoiceRequest struct {
	ClientID string               `json:"client"`
	DueDate  string               `json:"dueDate"` // fecha calendario, formato 2006-01-02
	Notes    string               `json:"notes,omitempty"`
	Items    []InvoiceItemRequest `json:"items"`
}

// ClientSummary referencia denormalizada del cliente en la factura.
type ClientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// InvoiceItemResponse línea en la respuesta, con el subtotal derivado de la
// misma aritmética que el total (ninguna superficie recalcula por su cuenta).
type InvoiceItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura completa para listados y detalle.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"invoiceNumber"`
	Client          ClientSummary         `json:"client"`
	DueDate         string                `json:"dueDate"`
	Notes           string                `json:"notes,omitempty"`
	Status          string                `json:"status"`
	Total           decimal.Decimal       `json:"total"`
	RemainingAmount decimal.Decimal       `json:"remainingAmount"`
	Items           []InvoiceItemResponse `json:"items"`
	CreatedAt       time.Time             `json:"createdAt"`
}
