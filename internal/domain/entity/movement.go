package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del almacén.
const (
	MovementKindIN  = "IN"  // entrada (recepción)
	MovementKindOUT = "OUT" // salida (expedición)
)

// Unidades de medida admitidas.
const (
	UnitKG    = "KG"   // peso en kilogramos
	UnitCount = "UNIT" // conteo de piezas
)

// Movement representa un movimiento de stock inmutable: una entrada o una
// salida de mercancía en una fecha dada. Es el evento base del libro de
// movimientos; el stock disponible nunca se persiste, se recalcula.
//
// Campos opcionales: LotRef, ClassCode, Owner y SubOwner usan "" como
// ausente; TotalValue y ExpiryDate usan nil. TotalValue es el costo total de
// la recepción (no precio unitario) y solo tiene sentido en entradas, igual
// que ExpiryDate.
type Movement struct {
	ID         string
	Kind       string // MovementKindIN | MovementKindOUT
	Date       time.Time
	Product    string
	Unit       string // UnitKG | UnitCount
	Quantity   decimal.Decimal // siempre > 0; el signo lo aporta Kind
	LotRef     string // referencia de lote/DUM
	ClassCode  string // código arancelario NGP
	Owner      string // empresa propietaria
	SubOwner   string // cliente final
	TotalValue *decimal.Decimal
	ExpiryDate *time.Time
	CreatedAt  time.Time
}

// IsReceipt indica si el movimiento es una entrada.
func (m *Movement) IsReceipt() bool { return m.Kind == MovementKindIN }

// Year devuelve el año calendario de la fecha del movimiento como cadena.
func (m *Movement) Year() string { return m.Date.Format("2006") }

// ValueOrZero devuelve TotalValue o cero si no fue informado. Una entrada
// sin valor aporta cero al promedio ponderado del lote; esa dilución del
// precio unitario es el comportamiento contratado, no un defecto.
func (m *Movement) ValueOrZero() decimal.Decimal {
	if m.TotalValue == nil {
		return decimal.Zero
	}
	return *m.TotalValue
}
