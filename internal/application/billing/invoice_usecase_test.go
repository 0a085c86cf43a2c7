package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturia-api/internal/application/billing"
	"github.com/jhoicas/Facturia-api/internal/application/dto"
	"github.com/jhoicas/Facturia-api/internal/domain"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

const testDueDate = "2099-12-31"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// env entorno de test con repos en memoria y los casos de uso ya cableados.
type env struct {
	store     *memStore
	clientUC  *billing.ClientUseCase
	invoiceUC *billing.InvoiceUseCase
	paymentUC *billing.PaymentUseCase
	clientID  string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := newMemStore()
	clientRepo := &fakeClientRepo{s: store}
	invoiceRepo := &fakeInvoiceRepo{s: store}
	paymentRepo := &fakePaymentRepo{s: store}
	tx := &fakeTxRunner{inv: invoiceRepo, pay: paymentRepo}

	e := &env{
		store:     store,
		clientUC:  billing.NewClientUseCase(clientRepo, invoiceRepo),
		invoiceUC: billing.NewInvoiceUseCase(tx, invoiceRepo, clientRepo, paymentRepo),
		paymentUC: billing.NewPaymentUseCase(tx, paymentRepo, invoiceRepo),
	}

	client, err := e.clientUC.Create(context.Background(), dto.ClientRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	})
	require.NoError(t, err)
	e.clientID = client.ID
	return e
}

// createInvoice helper: una factura con las líneas dadas contra el cliente del env.
func (e *env) createInvoice(t *testing.T, items ...dto.InvoiceItemRequest) *dto.InvoiceResponse {
	t.Helper()
	inv, err := e.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: e.clientID,
		DueDate:  testDueDate,
		Items:    items,
	})
	require.NoError(t, err)
	return inv
}

func item(name, qty, price, tax string) dto.InvoiceItemRequest {
	return dto.InvoiceItemRequest{Name: name, Quantity: d(qty), Price: d(price), Tax: d(tax)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_CalculaTotalConIVA(t *testing.T) {
	e := newEnv(t)

	// 3 × 100 con IVA 10% → 330
	inv := e.createInvoice(t, item("Consultoría", "3", "100", "10"))

	assert.True(t, inv.Total.Equal(d("330")), "total esperado 330, obtuvo %s", inv.Total)
	assert.True(t, inv.RemainingAmount.Equal(inv.Total), "al crear, saldo == total")
	assert.Equal(t, entity.StatusDraft, inv.Status)
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].Subtotal.Equal(d("300")), "subtotal de línea sin IVA")
	assert.NotEmpty(t, inv.Number)
	assert.Equal(t, "Acme Corp", inv.Client.Name)
}

func TestCreateInvoice_VariasLineas(t *testing.T) {
	e := newEnv(t)

	// 2×10 + 5×100 @19% → 20 + 595 = 615
	inv := e.createInvoice(t,
		item("Horas", "2", "10", "0"),
		item("Licencia", "5", "100", "19"),
	)
	assert.True(t, inv.Total.Equal(d("615")), "total esperado 615, obtuvo %s", inv.Total)
}

func TestCreateInvoice_ValidacionDeLineas(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		items []dto.InvoiceItemRequest
	}{
		{"sin lineas", nil},
		{"nombre vacio", []dto.InvoiceItemRequest{item("   ", "1", "10", "0")}},
		{"cantidad cero", []dto.InvoiceItemRequest{item("X", "0", "10", "0")}},
		{"cantidad negativa", []dto.InvoiceItemRequest{item("X", "-1", "10", "0")}},
		{"precio negativo", []dto.InvoiceItemRequest{item("X", "1", "-10", "0")}},
		{"iva negativo", []dto.InvoiceItemRequest{item("X", "1", "10", "-1")}},
		{"iva mayor a 100", []dto.InvoiceItemRequest{item("X", "1", "10", "101")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.invoiceUC.Create(ctx, dto.CreateInvoiceRequest{
				ClientID: e.clientID,
				DueDate:  testDueDate,
				Items:    tc.items,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateInvoice_ClienteInexistente(t *testing.T) {
	e := newEnv(t)
	_, err := e.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: "no-existe",
		DueDate:  testDueDate,
		Items:    []dto.InvoiceItemRequest{item("X", "1", "10", "0")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_FechaInvalida(t *testing.T) {
	e := newEnv(t)
	_, err := e.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: e.clientID,
		DueDate:  "31/12/2099",
		Items:    []dto.InvoiceItemRequest{item("X", "1", "10", "0")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestListInvoices_FiltroPorEstado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.createInvoice(t, item("A", "1", "100", "0"))
	inv2 := e.createInvoice(t, item("B", "1", "200", "0"))

	// Saldar la segunda para que cambie a paid
	_, err := e.paymentUC.Add(ctx, inv2.ID, dto.AddPaymentRequest{Amount: d("200"), Method: entity.PaymentMethodCash})
	require.NoError(t, err)

	paid, err := e.invoiceUC.List(ctx, entity.StatusPaid, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, inv2.ID, paid[0].ID)

	all, err := e.invoiceUC.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListInvoices_EstadoInvalido(t *testing.T) {
	e := newEnv(t)
	_, err := e.invoiceUC.List(context.Background(), "archived", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetInvoice_NoExiste(t *testing.T) {
	e := newEnv(t)
	_, err := e.invoiceUC.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateInvoice_RecalculaTotal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	inv := e.createInvoice(t, item("Inicial", "1", "100", "0"))

	updated, err := e.invoiceUC.Update(ctx, inv.ID, dto.CreateInvoiceRequest{
		ClientID: e.clientID,
		DueDate:  testDueDate,
		Items:    []dto.InvoiceItemRequest{item("Corregida", "2", "250", "0")},
	})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(d("500")), "total recalculado esperado 500, obtuvo %s", updated.Total)
	assert.True(t, updated.RemainingAmount.Equal(d("500")))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Corregida", updated.Items[0].Name)
}

func TestUpdateInvoice_ConPagos_Conflicto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	inv := e.createInvoice(t, item("X", "1", "500", "0"))
	_, err := e.paymentUC.Add(ctx, inv.ID, dto.AddPaymentRequest{Amount: d("100"), Method: entity.PaymentMethodBank})
	require.NoError(t, err)

	_, err = e.invoiceUC.Update(ctx, inv.ID, dto.CreateInvoiceRequest{
		ClientID: e.clientID,
		DueDate:  testDueDate,
		Items:    []dto.InvoiceItemRequest{item("Y", "1", "900", "0")},
	})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"editar una factura con abonos registrados debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteInvoice_EliminaLineasYPagos(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	inv := e.createInvoice(t, item("X", "1", "500", "0"))
	_, err := e.paymentUC.Add(ctx, inv.ID, dto.AddPaymentRequest{Amount: d("200"), Method: entity.PaymentMethodCash})
	require.NoError(t, err)

	require.NoError(t, e.invoiceUC.Delete(ctx, inv.ID))
	assert.Empty(t, e.store.payments, "los pagos de la factura deben eliminarse en cascada")
	assert.Empty(t, e.store.items[inv.ID])

	// Repetir el DELETE: not found, no fallo interno
	assert.ErrorIs(t, e.invoiceUC.Delete(ctx, inv.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteClient_ConFacturas_Conflicto(t *testing.T) {
	e := newEnv(t)
	e.createInvoice(t, item("X", "1", "10", "0"))

	err := e.clientUC.Delete(context.Background(), e.clientID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"no se puede eliminar un cliente con facturas asociadas")
}

func TestDeleteClient_NoExiste(t *testing.T) {
	e := newEnv(t)
	err := e.clientUC.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateClient_NombreObligatorio(t *testing.T) {
	e := newEnv(t)
	_, err := e.clientUC.Create(context.Background(), dto.ClientRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
