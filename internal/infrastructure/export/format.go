// Package export serializa el informe de stock a los formatos planos que
// descargan los usuarios (CSV legado con separador ";" y libro xlsx). El
// formato numérico reproduce el de las planillas históricas: miles con
// espacio, coma decimal.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// zeroClamp: magnitudes por debajo de este umbral se imprimen como cero
// (evita "-0,00" por residuos de redondeo).
var zeroClamp = decimal.New(1, -6)

// Decimales contratados por las planillas legadas.
const (
	QtyDecimals   = 2
	ValueDecimals = 3
)

// FormatNum imprime un decimal con coma decimal y espacio como separador de
// miles. Ej: 1234567.891 con 2 decimales → "1 234 567,89".
func FormatNum(d decimal.Decimal, decimals int32) string {
	if d.Abs().LessThan(zeroClamp) {
		d = decimal.Zero
	}
	s := d.StringFixed(decimals)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(intPart[i])
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatQty formatea una cantidad (2 decimales).
func FormatQty(d decimal.Decimal) string { return FormatNum(d, QtyDecimals) }

// FormatValue formatea un valor en DHS (3 decimales).
func FormatValue(d decimal.Decimal) string { return FormatNum(d, ValueDecimals) }

// FormatDate imprime una fecha como dd/mm/aaaa; cero → "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
