package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturia-api/internal/domain"
	"github.com/jhoicas/Facturia-api/internal/domain/billing"
)

func TestValidatePayment_AceptaDentroDelSaldo(t *testing.T) {
	remaining := decimal.NewFromInt(500)

	assert.NoError(t, billing.ValidatePayment(decimal.NewFromInt(1), remaining))
	assert.NoError(t, billing.ValidatePayment(decimal.RequireFromString("499.99"), remaining))
	// Pago exacto del saldo: permitido (deja la factura en paid)
	assert.NoError(t, billing.ValidatePayment(remaining, remaining))
}

func TestValidatePayment_RechazaMontoNoPositivo(t *testing.T) {
	remaining := decimal.NewFromInt(500)

	err := billing.ValidatePayment(decimal.Zero, remaining)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto 0 debe rechazarse")

	err = billing.ValidatePayment(decimal.NewFromInt(-10), remaining)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto negativo debe rechazarse")
}

func TestValidatePayment_RechazaExcesoSobreElSaldo(t *testing.T) {
	remaining := decimal.NewFromInt(500)

	// Un centavo por encima del saldo ya es exceso
	err := billing.ValidatePayment(decimal.RequireFromString("500.01"), remaining)
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance)
}

// Con saldo en cero cualquier monto positivo se rechaza: la factura ya está saldada.
func TestValidatePayment_SaldoCero_RechazaTodoPagoPositivo(t *testing.T) {
	err := billing.ValidatePayment(decimal.RequireFromString("0.01"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance)
}
