package billing_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturia-api/internal/domain"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
	"github.com/jhoicas/Facturia-api/internal/domain/repository"
)

// memStore almacenamiento en memoria compartido por los repos fake.
// Sin locking: los tests de casos de uso son secuenciales.
type memStore struct {
	clients  map[string]*entity.Client
	invoices map[string]*entity.Invoice
	items    map[string][]entity.InvoiceItem // por invoiceID
	payments map[string]*entity.Payment
}

func newMemStore() *memStore {
	return &memStore{
		clients:  make(map[string]*entity.Client),
		invoices: make(map[string]*entity.Invoice),
		items:    make(map[string][]entity.InvoiceItem),
		payments: make(map[string]*entity.Payment),
	}
}

// ── ClientRepository ──────────────────────────────────────────────────────────

type fakeClientRepo struct{ s *memStore }

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.s.clients {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}

// ── InvoiceRepository ─────────────────────────────────────────────────────────

type fakeInvoiceRepo struct{ s *memStore }

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	cp := *inv
	cp.Items = nil
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(_ context.Context, item *entity.InvoiceItem) error {
	r.s.items[item.InvoiceID] = append(r.s.items[item.InvoiceID], *item)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(_ context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	items := append([]entity.InvoiceItem(nil), r.s.items[invoiceID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	out := make([]*entity.InvoiceItem, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, status string, limit, offset int) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.s.invoices {
		if status != "" && inv.Status != status {
			continue
		}
		cp := *inv
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if _, ok := r.s.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	cp.Items = nil
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteItems(_ context.Context, invoiceID string) error {
	delete(r.s.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) CountByClient(_ context.Context, clientID string) (int64, error) {
	var n int64
	for _, inv := range r.s.invoices {
		if inv.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

// ── PaymentRepository ─────────────────────────────────────────────────────────

type fakePaymentRepo struct{ s *memStore }

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	cp := *p
	r.s.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) List(_ context.Context, limit, offset int) ([]*repository.PaymentListRow, error) {
	var list []*repository.PaymentListRow
	for _, p := range r.s.payments {
		row := &repository.PaymentListRow{Payment: *p}
		if inv, ok := r.s.invoices[p.InvoiceID]; ok {
			row.InvoiceNumber = inv.Number
		}
		list = append(list, row)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Payment.CreatedAt.After(list[j].Payment.CreatedAt)
	})
	return page(list, limit, offset), nil
}

func (r *fakePaymentRepo) SumByInvoice(_ context.Context, invoiceID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.s.payments {
		if p.InvoiceID == invoiceID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.payments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.payments, id)
	return nil
}

func (r *fakePaymentRepo) DeleteByInvoice(_ context.Context, invoiceID string) error {
	for id, p := range r.s.payments {
		if p.InvoiceID == invoiceID {
			delete(r.s.payments, id)
		}
	}
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directo contra los repos en memoria.
// No simula locking ni rollback: los tests cubren la lógica de negocio,
// la atomicidad real la ejercita postgres.TxRunner.
type fakeTxRunner struct {
	inv *fakeInvoiceRepo
	pay *fakePaymentRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(t.inv, t.pay)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
