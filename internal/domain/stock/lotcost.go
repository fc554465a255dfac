// Package stock implementa el motor de conciliación y valoración del almacén:
// cálculo puro que convierte el libro completo de movimientos en costos
// promedio por lote, saldos por producto/propietario/año y la jerarquía de
// agrupación que consumen pantalla y exportaciones.
//
// Todas las funciones del paquete son puras: no mutan sus entradas, no
// retienen estado entre invocaciones y no devuelven errores (los datos llegan
// ya validados por la capa de aplicación).
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// lotKeyNone marca dimensión propietario/cliente ausente en la clave de lote.
const lotKeyNone = "NONE"

// LotKey identifica un lote a efectos de costeo: misma referencia, producto,
// unidad y dimensiones de propiedad.
type LotKey struct {
	LotRef   string
	Product  string
	Unit     string
	Owner    string
	SubOwner string
}

// LotKeyFor construye la clave de lote de un movimiento.
func LotKeyFor(m *entity.Movement) LotKey {
	owner, subOwner := m.Owner, m.SubOwner
	if owner == "" {
		owner = lotKeyNone
	}
	if subOwner == "" {
		subOwner = lotKeyNone
	}
	return LotKey{
		LotRef:   m.LotRef,
		Product:  m.Product,
		Unit:     m.Unit,
		Owner:    owner,
		SubOwner: subOwner,
	}
}

// LotCost acumula las recepciones de un lote y deriva su costo promedio
// ponderado. ArrivalYear queda fijado con el primer movimiento observado para
// la clave y no se actualiza después; es el año bajo el que se atribuyen las
// salidas de ese lote.
type LotCost struct {
	ArrivalYear        string
	TotalReceivedQty   decimal.Decimal
	TotalReceivedValue decimal.Decimal
	UnitPrice          decimal.Decimal
}

// ResolveLotCosts recorre el libro COMPLETO (sin filtros) y produce el costo
// promedio ponderado por lote. El promedio es acumulativo sobre todas las
// recepciones de la clave, no secuenciado en el tiempo: no hay FIFO.
// Una recepción sin valor aporta cero al numerador y diluye el precio
// unitario; ese es el contrato.
func ResolveLotCosts(movements []entity.Movement) map[LotKey]*LotCost {
	costs := make(map[LotKey]*LotCost)
	for i := range movements {
		m := &movements[i]
		if !m.IsReceipt() {
			continue
		}
		key := LotKeyFor(m)
		lc, ok := costs[key]
		if !ok {
			lc = &LotCost{ArrivalYear: m.Year()}
			costs[key] = lc
		}
		lc.TotalReceivedQty = lc.TotalReceivedQty.Add(m.Quantity)
		lc.TotalReceivedValue = lc.TotalReceivedValue.Add(m.ValueOrZero())
		if lc.TotalReceivedQty.IsPositive() {
			lc.UnitPrice = lc.TotalReceivedValue.Div(lc.TotalReceivedQty)
		} else {
			lc.UnitPrice = decimal.Zero
		}
	}
	return costs
}
