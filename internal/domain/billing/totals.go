// Package billing contiene la aritmética pura de facturación: totales por
// línea, total de la factura, reglas de pago contra el saldo y derivación del
// estado. Es la única implementación de estas fórmulas en todo el sistema;
// creación de facturas, PDF y reportes derivan de aquí.
package billing

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineSubtotal cantidad × precio unitario, sin impuesto y sin redondeo.
func LineSubtotal(item entity.InvoiceItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// LineTax impuesto de la línea: subtotal × (tax_percent / 100), sin redondeo.
func LineTax(item entity.InvoiceItem) decimal.Decimal {
	return LineSubtotal(item).Mul(item.TaxPercent).Div(hundred)
}

// LineTotal subtotal + impuesto de la línea.
func LineTotal(item entity.InvoiceItem) decimal.Decimal {
	return LineSubtotal(item).Add(LineTax(item))
}

// ComputeTotal suma las contribuciones de todas las líneas. Lista vacía → 0.
// No redondea durante la acumulación: el redondeo a 2 decimales ocurre solo en
// las superficies de presentación.
func ComputeTotal(items []entity.InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}
