package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

// DeriveStatus calcula el estado de la factura a partir del total, lo pagado,
// la fecha de vencimiento y si ya fue enviada. Precedencia:
//
//	paid > overdue > partial > sent > draft
//
// Una factura saldada nunca vuelve a overdue aunque esté vencida; el
// vencimiento se evalúa contra el inicio del día de `now` (vence al terminar
// el día de DueDate).
func DeriveStatus(total, paid decimal.Decimal, dueDate time.Time, sent bool, now time.Time) string {
	if total.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(total) {
		return entity.StatusPaid
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		return entity.StatusOverdue
	}
	if paid.GreaterThan(decimal.Zero) {
		return entity.StatusPartial
	}
	if sent {
		return entity.StatusSent
	}
	return entity.StatusDraft
}
