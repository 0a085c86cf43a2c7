// Package reports contiene los casos de uso de solo lectura para el dashboard
// y los reportes de ventas. Los agregados vienen siempre de la base de datos;
// aquí no se recalcula nada que ya sea autoritativo en las facturas.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturia-api/internal/application/dto"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

// ReportUseCase reportes del negocio.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Dashboard arma las tarjetas del tablero.
//
// Tres consultas en paralelo: clientes, facturas y total cobrado.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	clientsCh := make(chan countResult, 1)
	invoicesCh := make(chan countResult, 1)
	paymentsCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.repo.CountClients(ctx)
		clientsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountInvoices(ctx)
		invoicesCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.repo.SumPayments(ctx)
		paymentsCh <- sumResult{total, err}
	}()

	clients := <-clientsCh
	invoices := <-invoicesCh
	payments := <-paymentsCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: contar clientes: %w", clients.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: contar facturas: %w", invoices.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("dashboard: sumar pagos: %w", payments.err)
	}

	return &dto.DashboardResponse{
		TotalClients:  clients.n,
		TotalInvoices: invoices.n,
		TotalPayments: payments.total,
	}, nil
}

// MonthlySales total facturado por mes del año en curso.
func (uc *ReportUseCase) MonthlySales(ctx context.Context) ([]dto.MonthlySalesDTO, error) {
	rows, err := uc.repo.MonthlySales(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}
	out := make([]dto.MonthlySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlySalesDTO{Month: r.Month, Total: r.Total})
	}
	return out, nil
}

// SalesByYear total facturado por año.
func (uc *ReportUseCase) SalesByYear(ctx context.Context) ([]dto.YearlySalesDTO, error) {
	rows, err := uc.repo.SalesByYear(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte anual: %w", err)
	}
	out := make([]dto.YearlySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.YearlySalesDTO{Year: r.Year, Total: r.Total})
	}
	return out, nil
}

// Outstanding facturas con saldo pendiente.
func (uc *ReportUseCase) Outstanding(ctx context.Context) ([]dto.OutstandingInvoiceDTO, error) {
	rows, err := uc.repo.Outstanding(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de cartera: %w", err)
	}
	out := make([]dto.OutstandingInvoiceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OutstandingInvoiceDTO{
			ID:              r.InvoiceID,
			Number:          r.Number,
			ClientName:      r.ClientName,
			Total:           r.Total,
			RemainingAmount: r.RemainingAmount,
			Status:          r.Status,
		})
	}
	return out, nil
}
