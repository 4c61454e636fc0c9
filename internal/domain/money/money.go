package money

import "github.com/shopspring/decimal"

// Round2 redondea un monto a 2 decimales con política half-up.
// Se aplica una sola vez al cerrar cada total monetario, nunca por línea,
// para no acumular error de redondeo.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Subtotal calcula max(0, total - descuento). El descuento nunca deja el
// subtotal en negativo.
func Subtotal(total, discount decimal.Decimal) decimal.Decimal {
	sub := total.Sub(discount)
	if sub.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return sub
}

// TaxFor calcula el impuesto sobre un subtotal dada una tasa porcentual
// (15 = 15%), redondeado a 2 decimales.
func TaxFor(subtotal, ratePct decimal.Decimal) decimal.Decimal {
	return Round2(subtotal.Mul(ratePct).Div(decimal.NewFromInt(100)))
}
