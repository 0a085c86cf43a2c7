package billing

import (
	"context"

	"github.com/jhoicas/Facturia-api/internal/domain/entity"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repos de facturas y pagos
// atados a la tx. Si fn retorna error se hace rollback.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// CompanyInfo datos del emisor para el PDF y el correo (vienen de configuración).
type CompanyInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// InvoicePDFGenerator genera la representación en PDF de una factura.
// invoice.Items debe venir cargado.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.Client, company CompanyInfo) ([]byte, error)
}

// EmailSender envía la factura por correo con el PDF adjunto.
type EmailSender interface {
	SendInvoice(ctx context.Context, to, subject, htmlBody string, pdf []byte, filename string) error
}
