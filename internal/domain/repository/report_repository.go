package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlySalesRow total facturado de un mes (1–12) del año consultado.
type MonthlySalesRow struct {
	Month int
	Total decimal.Decimal
}

// YearlySalesRow total facturado de un año calendario.
type YearlySalesRow struct {
	Year  int
	Total decimal.Decimal
}

// OutstandingRow factura con saldo pendiente, con el nombre del cliente
// denormalizado para el reporte.
type OutstandingRow struct {
	InvoiceID       string
	Number          string
	ClientName      string
	Total           decimal.Decimal
	RemainingAmount decimal.Decimal
	Status          string
}

// ReportRepository consultas de solo lectura para el dashboard y los reportes
// de ventas. Los agregados se calculan siempre en la base de datos.
type ReportRepository interface {
	CountClients(ctx context.Context) (int64, error)
	CountInvoices(ctx context.Context) (int64, error)
	// SumPayments total histórico cobrado; 0 si no hay pagos.
	SumPayments(ctx context.Context) (decimal.Decimal, error)
	MonthlySales(ctx context.Context, year int) ([]MonthlySalesRow, error)
	SalesByYear(ctx context.Context) ([]YearlySalesRow, error)
	Outstanding(ctx context.Context) ([]OutstandingRow, error)
}
