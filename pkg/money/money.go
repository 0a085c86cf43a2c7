// Package money formatea montos para superficies de presentación (PDF, correos).
// La aritmética interna se mantiene sin redondeo en decimal.Decimal; aquí solo
// se redondea a 2 decimales para mostrar.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatUSD devuelve el monto como "$2,500.00" (separador de miles y 2 decimales).
func FormatUSD(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "$" + printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
