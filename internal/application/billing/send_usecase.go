package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Facturia-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturia-api/internal/domain/billing"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
	"github.com/jhoicas/Facturia-api/pkg/money"
)

// SendUseCase envía la factura por correo al cliente, con el PDF adjunto.
// Tras el primer envío la factura pasa de draft a sent (si no tiene pagos).
type SendUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
	pdf         *PDFUseCase
	sender      EmailSender // nil si SMTP no está configurado
	company     CompanyInfo
}

// NewSendUseCase construye el caso de uso. sender puede ser nil (envío deshabilitado).
func NewSendUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
	pdf *PDFUseCase,
	sender EmailSender,
	company CompanyInfo,
) *SendUseCase {
	return &SendUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		pdf:         pdf,
		sender:      sender,
		company:     company,
	}
}

// Send envía la factura por correo. Requiere SMTP configurado y un cliente con email.
func (uc *SendUseCase) Send(ctx context.Context, invoiceID string) error {
	if uc.sender == nil {
		return domain.ErrEmailNotConfigured
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return err
	}
	if client == nil || client.Email == "" {
		return fmt.Errorf("%w: el cliente no tiene email", domain.ErrInvalidInput)
	}

	pdfBytes, filename, err := uc.pdf.ExportInvoicePDF(ctx, invoiceID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Factura %s de %s", inv.Number, uc.company.Name)
	body := invoiceEmailBody(inv.Number, client.Name, uc.company.Name,
		money.FormatUSD(inv.Total), money.FormatUSD(inv.RemainingAmount),
		inv.DueDate.Format(dateLayout))
	if err := uc.sender.SendInvoice(ctx, client.Email, subject, body, pdfBytes, filename); err != nil {
		return fmt.Errorf("enviar factura %s: %w", inv.Number, err)
	}

	// Primer envío: marcar sent_at y rederivar el estado
	now := time.Now()
	if inv.SentAt == nil {
		inv.SentAt = &now
	}
	paid, err := uc.paymentRepo.SumByInvoice(ctx, inv.ID)
	if err != nil {
		return err
	}
	inv.Status = domainbilling.DeriveStatus(inv.Total, paid, inv.DueDate, true, now)
	inv.UpdatedAt = now
	return uc.invoiceRepo.Update(ctx, inv)
}

// invoiceEmailBody cuerpo HTML simple; los montos llegan ya formateados.
func invoiceEmailBody(number, clientName, companyName, total, remaining, dueDate string) string {
	return fmt.Sprintf(`<p>Hola %s,</p>
<p>Adjuntamos la factura <strong>%s</strong> de %s.</p>
<ul>
  <li>Total: <strong>%s</strong></li>
  <li>Saldo pendiente: %s</li>
  <li>Vence: %s</li>
</ul>
<p>Gracias por su preferencia.</p>`,
		clientName, number, companyName, total, remaining, dueDate)
}
