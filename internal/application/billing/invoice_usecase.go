package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturia-api/internal/application/dto"
	"github.com/jhoicas/Facturia-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturia-api/internal/domain/billing"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase crea, consulta, actualiza y elimina facturas.
// El total se calcula siempre aquí con domainbilling.ComputeTotal; el valor que
// pueda traer el cliente se ignora.
type InvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

// parseItems valida las líneas en el borde y las convierte a entidades.
// Reglas: nombre no vacío, cantidad > 0, precio >= 0, IVA entre 0 y 100.
func parseItems(in []dto.InvoiceItemRequest) ([]entity.InvoiceItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.InvoiceItem, 0, len(in))
	for i, it := range in {
		if strings.TrimSpace(it.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if it.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if it.Tax.LessThan(decimal.Zero) || it.Tax.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.InvoiceItem{
			Name:       strings.TrimSpace(it.Name),
			Quantity:   it.Quantity,
			UnitPrice:  it.Price,
			TaxPercent: it.Tax,
			Position:   i,
		})
	}
	return items, nil
}

// Create crea la factura: valida líneas y cliente, calcula el total y persiste
// cabecera y líneas en una sola transacción. Estado inicial: draft, saldo = total.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	items, err := parseItems(in.Items)
	if err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	total := domainbilling.ComputeTotal(items)
	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		Number:          fmt.Sprintf("INV-%d", now.UnixMilli()),
		ClientID:        client.ID,
		DueDate:         dueDate,
		Notes:           in.Notes,
		Status:          entity.StatusDraft,
		Total:           total,
		RemainingAmount: total,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for i := range items {
		items[i].ID = uuid.New().String()
		items[i].InvoiceID = inv.ID
	}
	inv.Items = items

	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.PaymentRepository) error {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		for i := range inv.Items {
			if err := invoiceRepo.CreateItem(ctx, &inv.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, client), nil
}

// List lista facturas, opcionalmente filtradas por estado.
func (uc *InvoiceUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	if status != "" && !validStatusFilter(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.invoiceRepo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	// Cache de clientes: los listados suelen repetir el mismo cliente.
	clients := make(map[string]*entity.Client)
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = derefItems(items)

		client, ok := clients[inv.ClientID]
		if !ok {
			client, err = uc.clientRepo.GetByID(ctx, inv.ClientID)
			if err != nil {
				return nil, err
			}
			clients[inv.ClientID] = client
		}
		out = append(out, toInvoiceResponse(inv, client))
	}
	return out, nil
}

// Get obtiene una factura por ID con sus líneas (consulta directa, sin listar).
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = derefItems(items)
	client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, client), nil
}

// Update reemplaza cliente, vencimiento, notas y líneas de la factura y
// recalcula el total. Solo se permite mientras no tenga pagos registrados:
// editar una factura con abonos rompería el saldo ya comprometido.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	items, err := parseItems(in.Items)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	var updated *entity.Invoice
	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		inv, err := invoiceRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		paid, err := paymentRepo.SumByInvoice(ctx, inv.ID)
		if err != nil {
			return err
		}
		if paid.GreaterThan(decimal.Zero) {
			return domain.ErrConflict
		}

		now := time.Now()
		total := domainbilling.ComputeTotal(items)
		inv.ClientID = client.ID
		inv.DueDate = dueDate
		inv.Notes = in.Notes
		inv.Total = total
		inv.RemainingAmount = total
		inv.Status = domainbilling.DeriveStatus(total, decimal.Zero, dueDate, inv.SentAt != nil, now)
		inv.UpdatedAt = now

		if err := invoiceRepo.DeleteItems(ctx, inv.ID); err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.New().String()
			items[i].InvoiceID = inv.ID
			if err := invoiceRepo.CreateItem(ctx, &items[i]); err != nil {
				return err
			}
		}
		inv.Items = items
		if err := invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(updated, client), nil
}

// Delete elimina la factura con sus líneas y pagos en una transacción.
// Repetir el DELETE sobre un id ya eliminado retorna ErrNotFound, no un 500.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		if err := paymentRepo.DeleteByInvoice(ctx, id); err != nil {
			return err
		}
		if err := invoiceRepo.DeleteItems(ctx, id); err != nil {
			return err
		}
		return invoiceRepo.Delete(ctx, id)
	})
}

func validStatusFilter(s string) bool {
	switch s {
	case entity.StatusDraft, entity.StatusSent, entity.StatusPartial, entity.StatusPaid, entity.StatusOverdue:
		return true
	}
	return false
}

func derefItems(items []*entity.InvoiceItem) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, 0, len(items))
	for _, it := range items {
		out = append(out, *it)
	}
	return out
}

// toInvoiceResponse arma la respuesta; el subtotal de cada línea sale de la
// misma aritmética del total (domainbilling.LineSubtotal).
func toInvoiceResponse(inv *entity.Invoice, client *entity.Client) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		DueDate:         inv.DueDate.Format(dateLayout),
		Notes:           inv.Notes,
		Status:          inv.Status,
		Total:           inv.Total,
		RemainingAmount: inv.RemainingAmount,
		Items:           make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		CreatedAt:       inv.CreatedAt,
	}
	resp.Client = dto.ClientSummary{ID: inv.ClientID}
	if client != nil {
		resp.Client.Name = client.Name
		resp.Client.Email = client.Email
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.UnitPrice,
			Tax:      it.TaxPercent,
			Subtotal: domainbilling.LineSubtotal(it),
		})
	}
	return resp
}
