package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

// PaymentListRow pago con el número de factura denormalizado para listados.
type PaymentListRow struct {
	Payment       entity.Payment
	InvoiceNumber string
}

// PaymentRepository puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// GetByID devuelve (nil, nil) si el pago no existe.
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	List(ctx context.Context, limit, offset int) ([]*PaymentListRow, error)
	// SumByInvoice suma los montos aplicados a la factura; 0 si no hay pagos.
	SumByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error)
	// Delete retorna domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
	DeleteByInvoice(ctx context.Context, invoiceID string) error
}
