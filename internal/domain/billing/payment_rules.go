package billing

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturia-api/internal/domain"
)

// ValidatePayment aplica la regla de saldo: un pago se acepta si y solo si
// 0 < amount <= remaining. Se invoca siempre con la factura bloqueada dentro
// de la transacción que registra el pago, de modo que el invariante
// remaining >= 0 se sostiene también bajo pagos concurrentes.
func ValidatePayment(amount, remaining decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(remaining) {
		return domain.ErrPaymentExceedsBalance
	}
	return nil
}
