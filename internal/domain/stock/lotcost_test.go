package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func fecha(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func valor(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// entrada construye una recepción con lote y valor opcional.
func entrada(t *testing.T, date, product, lot string, qty string, value *decimal.Decimal) entity.Movement {
	t.Helper()
	return entity.Movement{
		Kind:       entity.MovementKindIN,
		Date:       fecha(t, date),
		Product:    product,
		Unit:       entity.UnitKG,
		Quantity:   dec(qty),
		LotRef:     lot,
		TotalValue: value,
	}
}

// salida construye una expedición contra un lote.
func salida(t *testing.T, date, product, lot string, qty string) entity.Movement {
	t.Helper()
	return entity.Movement{
		Kind:     entity.MovementKindOUT,
		Date:     fecha(t, date),
		Product:  product,
		Unit:     entity.UnitKG,
		Quantity: dec(qty),
		LotRef:   lot,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveLotCosts
// ──────────────────────────────────────────────────────────────────────────────

// El precio unitario es el promedio ponderado acumulado de todas las
// recepciones del lote, no FIFO: 1750/150 ≈ 11.667.
func TestResolveLotCosts_PromedioPonderado(t *testing.T) {
	ledger := []entity.Movement{
		entrada(t, "2024-01-10", "Anchois Frais", "L1", "100", valor("1000")),
		entrada(t, "2024-02-10", "Anchois Frais", "L1", "50", valor("750")),
	}

	costs := stock.ResolveLotCosts(ledger)
	require.Len(t, costs, 1)

	lc := costs[stock.LotKeyFor(&ledger[0])]
	require.NotNil(t, lc)
	assert.True(t, lc.TotalReceivedQty.Equal(dec("150")))
	assert.True(t, lc.TotalReceivedValue.Equal(dec("1750")))
	assert.InDelta(t, 11.667, lc.UnitPrice.InexactFloat64(), 0.001)
}

// ArrivalYear se fija con el primer movimiento observado y no cambia aunque
// lleguen recepciones posteriores de otro año.
func TestResolveLotCosts_AnioLlegadaPrimerRegistro(t *testing.T) {
	ledger := []entity.Movement{
		entrada(t, "2023-11-20", "Calamars", "L9", "10", valor("100")),
		entrada(t, "2024-01-05", "Calamars", "L9", "10", valor("100")),
	}

	costs := stock.ResolveLotCosts(ledger)
	lc := costs[stock.LotKeyFor(&ledger[0])]
	require.NotNil(t, lc)
	assert.Equal(t, "2023", lc.ArrivalYear)
}

// Una recepción sin valor aporta cero y diluye el promedio (contrato, no
// defecto): (1000+0)/200 = 5.
func TestResolveLotCosts_RecepcionSinValorDiluye(t *testing.T) {
	ledger := []entity.Movement{
		entrada(t, "2024-01-10", "Futs", "L2", "100", valor("1000")),
		entrada(t, "2024-01-15", "Futs", "L2", "100", nil),
	}

	costs := stock.ResolveLotCosts(ledger)
	lc := costs[stock.LotKeyFor(&ledger[0])]
	require.NotNil(t, lc)
	assert.True(t, lc.UnitPrice.Equal(dec("5")))
}

// Las salidas no intervienen en el costeo y las dimensiones de propiedad
// separan claves.
func TestResolveLotCosts_ClavesPorPropietario(t *testing.T) {
	conOwner := entrada(t, "2024-01-10", "Pots", "L3", "10", valor("50"))
	conOwner.Owner = "DAM PECHE SARL"
	sinOwner := entrada(t, "2024-01-11", "Pots", "L3", "20", valor("200"))
	ledger := []entity.Movement{
		conOwner,
		sinOwner,
		salida(t, "2024-02-01", "Pots", "L3", "5"),
	}

	costs := stock.ResolveLotCosts(ledger)
	require.Len(t, costs, 2)

	lc := costs[stock.LotKeyFor(&conOwner)]
	require.NotNil(t, lc)
	assert.True(t, lc.TotalReceivedQty.Equal(dec("10")))

	lc = costs[stock.LotKeyFor(&sinOwner)]
	require.NotNil(t, lc)
	assert.True(t, lc.UnitPrice.Equal(dec("10")))
}
