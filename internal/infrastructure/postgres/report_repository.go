package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para dashboard y reportes.
// Siempre va contra el pool: son lecturas sin estado transaccional.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountClients cuenta los clientes registrados.
func (r *ReportRepo) CountClients(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// CountInvoices cuenta las facturas emitidas.
func (r *ReportRepo) CountInvoices(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// SumPayments total histórico cobrado; 0 si no hay pagos.
func (r *ReportRepo) SumPayments(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// MonthlySales total facturado por mes del año dado. Solo devuelve meses con facturas.
func (r *ReportRepo) MonthlySales(ctx context.Context, year int) ([]repository.MonthlySalesRow, error) {
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(total), 0)
		FROM invoices
		WHERE EXTRACT(YEAR FROM created_at) = $1
		GROUP BY month ORDER BY month`
	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlySalesRow
	for rows.Next() {
		var row repository.MonthlySalesRow
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SalesByYear total facturado por año calendario, ascendente.
func (r *ReportRepo) SalesByYear(ctx context.Context) ([]repository.YearlySalesRow, error) {
	query := `
		SELECT EXTRACT(YEAR FROM created_at)::int AS year, COALESCE(SUM(total), 0)
		FROM invoices
		GROUP BY year ORDER BY year`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by year: %w", err)
	}
	defer rows.Close()
	var list []repository.YearlySalesRow
	for rows.Next() {
		var row repository.YearlySalesRow
		if err := rows.Scan(&row.Year, &row.Total); err != nil {
			return nil, fmt.Errorf("scan sales by year: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Outstanding facturas con saldo pendiente, las más vencidas primero.
func (r *ReportRepo) Outstanding(ctx context.Context) ([]repository.OutstandingRow, error) {
	query := `
		SELECT i.id, i.number, c.name, i.total, i.remaining_amount, i.status
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.remaining_amount > 0
		ORDER BY i.due_date`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("outstanding invoices: %w", err)
	}
	defer rows.Close()
	var list []repository.OutstandingRow
	for rows.Next() {
		var row repository.OutstandingRow
		if err := rows.Scan(&row.InvoiceID, &row.Number, &row.ClientName, &row.Total, &row.RemainingAmount, &row.Status); err != nil {
			return nil, fmt.Errorf("scan outstanding: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
