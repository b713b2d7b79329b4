// Package money formatea importes monetarios para presentación, con las
// convenciones en-US del cliente (separador de miles, dos decimales, símbolo).
package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format devuelve el importe con símbolo de moneda, ej. Format(19800, "USD")
// → "$19,800.00". Un código ISO desconocido degrada al propio código como
// prefijo; nunca falla.
func Format(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%s %v", code, number.Decimal(amount,
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return printer.Sprintf("%v%v", currency.Symbol(unit), number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
