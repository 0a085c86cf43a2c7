package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Facturia-api/internal/application/dto"
	"github.com/jhoicas/Facturia-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturia-api/internal/domain/billing"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

// PaymentUseCase registra, lista y elimina pagos.
//
// Add y Delete corren dentro de una transacción con la factura bloqueada:
// validación de saldo, inserción del pago y recálculo de remaining_amount y
// status son atómicos. Dos pagos concurrentes sobre la misma factura se
// serializan en el lock; el segundo ve el saldo ya descontado y, si excede,
// recibe ErrPaymentExceedsBalance. remaining_amount nunca queda negativo.
type PaymentUseCase struct {
	txRunner    TxRunner
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner TxRunner,
	paymentRepo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// Add registra un abono contra la factura.
func (uc *PaymentUseCase) Add(ctx context.Context, invoiceID string, in dto.AddPaymentRequest) (*dto.PaymentResponse, error) {
	if invoiceID == "" || !entity.ValidPaymentMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	var paidAt *time.Time
	if in.PaidAt != "" {
		t, err := time.Parse(dateLayout, in.PaidAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		paidAt = &t
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: invoiceID,
		Amount:    in.Amount,
		Method:    in.Method,
		PaidAt:    paidAt,
		CreatedAt: now,
	}
	var invoiceNumber string

	err := uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		inv, err := invoiceRepo.GetByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		// Regla de saldo sobre el snapshot autoritativo (fila bloqueada)
		if err := domainbilling.ValidatePayment(in.Amount, inv.RemainingAmount); err != nil {
			return err
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		invoiceNumber = inv.Number
		return uc.recomputeBalance(ctx, invoiceRepo, paymentRepo, inv, now)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment, invoiceNumber), nil
}

// List lista pagos con el número de factura denormalizado.
func (uc *PaymentUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.PaymentResponse, error) {
	page.DefaultPage()
	rows, err := uc.paymentRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPaymentResponse(&row.Payment, row.InvoiceNumber))
	}
	return out, nil
}

// Get obtiene un pago por ID.
func (uc *PaymentUseCase) Get(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	number := ""
	if inv, err := uc.invoiceRepo.GetByID(ctx, payment.InvoiceID); err == nil && inv != nil {
		number = inv.Number
	}
	return toPaymentResponse(payment, number), nil
}

// Delete elimina un pago y devuelve su monto al saldo de la factura,
// recalculando el estado (un paid puede volver a partial u overdue).
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		payment, err := paymentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.ErrNotFound
		}
		inv, err := invoiceRepo.GetByIDForUpdate(ctx, payment.InvoiceID)
		if err != nil {
			return err
		}
		if err := paymentRepo.Delete(ctx, id); err != nil {
			return err
		}
		if inv == nil {
			// Pago huérfano (factura ya eliminada): solo se borra.
			return nil
		}
		return uc.recomputeBalance(ctx, invoiceRepo, paymentRepo, inv, time.Now())
	})
}

// recomputeBalance recalcula saldo y estado desde la suma real de pagos y
// persiste la cabecera. Debe llamarse con la factura bloqueada.
func (uc *PaymentUseCase) recomputeBalance(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	inv *entity.Invoice,
	now time.Time,
) error {
	paid, err := paymentRepo.SumByInvoice(ctx, inv.ID)
	if err != nil {
		return err
	}
	inv.RemainingAmount = inv.Total.Sub(paid)
	inv.Status = domainbilling.DeriveStatus(inv.Total, paid, inv.DueDate, inv.SentAt != nil, now)
	inv.UpdatedAt = now
	return invoiceRepo.Update(ctx, inv)
}

func toPaymentResponse(p *entity.Payment, invoiceNumber string) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		InvoiceNumber: invoiceNumber,
		Amount:        p.Amount,
		Method:        p.Method,
		CreatedAt:     p.CreatedAt,
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.Format(dateLayout)
	}
	return resp
}
