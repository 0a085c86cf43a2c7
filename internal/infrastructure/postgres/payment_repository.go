package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturia-api/internal/domain"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, invoice_id, amount, method, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.InvoiceID, p.Amount, p.Method, p.PaidAt, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, method, paid_at, created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List lista pagos con el número de factura denormalizado, del más reciente al más viejo.
func (r *PaymentRepo) List(ctx context.Context, limit, offset int) ([]*repository.PaymentListRow, error) {
	query := `
		SELECT p.id, p.invoice_id, p.amount, p.method, p.paid_at, p.created_at, i.number
		FROM payments p
		JOIN invoices i ON i.id = p.invoice_id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*repository.PaymentListRow
	for rows.Next() {
		var row repository.PaymentListRow
		p := &row.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &p.PaidAt, &p.CreatedAt, &row.InvoiceNumber); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// SumByInvoice suma los montos aplicados a la factura; 0 si no hay pagos.
func (r *PaymentRepo) SumByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`, invoiceID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// Delete elimina un pago. Retorna ErrNotFound si no existe.
func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByInvoice elimina todos los pagos de la factura.
func (r *PaymentRepo) DeleteByInvoice(ctx context.Context, invoiceID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM payments WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete payments by invoice: %w", err)
	}
	return nil
}
