package dto

import "github.com/shopspring/decimal"

// DashboardResponse tarjetas del dashboard.
type DashboardResponse struct {
	TotalClients  int64           `json:"totalClients"`
	TotalInvoices int64           `json:"totalInvoices"`
	TotalPayments decimal.Decimal `json:"totalPayments"` // monto cobrado histórico
}

// MonthlySalesDTO total facturado por mes del año en curso.
type MonthlySalesDTO struct {
	Month int             `json:"month"` // 1–12
	Total decimal.Decimal `json:"total"`
}

// YearlySalesDTO total facturado por año.
type YearlySalesDTO struct {
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// OutstandingInvoiceDTO factura con saldo pendiente para el reporte.
type OutstandingInvoiceDTO struct {
	ID              string          `json:"id"`
	Number          string          `json:"invoiceNumber"`
	ClientName      string          `json:"clientName"`
	Total           decimal.Decimal `json:"total"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
}
