package repository

import (
	"context"

	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para facturas y sus líneas.
// Los Get devuelven (nil, nil) si la factura no existe.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByIDForUpdate bloquea la fila de la factura (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; es lo que sostiene el
	// invariante remaining_amount >= 0 bajo pagos concurrentes.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	// List filtra por estado si status no es vacío. Orden: creación descendente.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Invoice, error)
	// Update persiste cabecera completa: client_id, due_date, notes, total,
	// remaining_amount, status, sent_at, updated_at.
	Update(ctx context.Context, invoice *entity.Invoice) error
	DeleteItems(ctx context.Context, invoiceID string) error
	// Delete retorna domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
	CountByClient(ctx context.Context, clientID string) (int64, error)
}
