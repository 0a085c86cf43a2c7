package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturia-api/internal/domain/billing"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

var statusNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func TestDeriveStatus_Matriz(t *testing.T) {
	total := decimal.NewFromInt(500)
	futura := statusNow.AddDate(0, 0, 7)
	vencida := statusNow.AddDate(0, 0, -1)

	cases := []struct {
		name    string
		total   decimal.Decimal
		paid    decimal.Decimal
		dueDate time.Time
		sent    bool
		want    string
	}{
		{"sin pagos ni envío", total, decimal.Zero, futura, false, entity.StatusDraft},
		{"enviada sin pagos", total, decimal.Zero, futura, true, entity.StatusSent},
		{"pago parcial", total, decimal.NewFromInt(200), futura, true, entity.StatusPartial},
		{"pago parcial sin enviar", total, decimal.NewFromInt(200), futura, false, entity.StatusPartial},
		{"saldada", total, decimal.NewFromInt(500), futura, true, entity.StatusPaid},
		{"sobrepago defensivo", total, decimal.NewFromInt(600), futura, true, entity.StatusPaid},
		{"vencida sin pagos", total, decimal.Zero, vencida, true, entity.StatusOverdue},
		{"vencida con pago parcial", total, decimal.NewFromInt(200), vencida, true, entity.StatusOverdue},
		{"vencida pero saldada queda paid", total, decimal.NewFromInt(500), vencida, true, entity.StatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.DeriveStatus(tc.total, tc.paid, tc.dueDate, tc.sent, statusNow)
			assert.Equal(t, tc.want, got)
		})
	}
}

// El corte de vencimiento es el inicio del día: una factura que vence hoy
// todavía no está overdue.
func TestDeriveStatus_VenceHoy_NoEsOverdue(t *testing.T) {
	total := decimal.NewFromInt(100)
	venceHoy := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	got := billing.DeriveStatus(total, decimal.Zero, venceHoy, true, statusNow)
	assert.Equal(t, entity.StatusSent, got)
}

// Factura de total cero: no se marca paid (no hay nada que pagar ni pagado).
func TestDeriveStatus_TotalCero_NoEsPaid(t *testing.T) {
	got := billing.DeriveStatus(decimal.Zero, decimal.Zero, statusNow.AddDate(0, 0, 7), false, statusNow)
	assert.Equal(t, entity.StatusDraft, got)
}
