package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

func saldo(owner, subOwner, year, product, qty, value string) stock.Bucket {
	return stock.Bucket{
		Product:        product,
		Unit:           "KG",
		Owner:          owner,
		SubOwner:       subOwner,
		ClassCode:      "-",
		Year:           year,
		CurrentQty:     dec(qty),
		CurrentValue:   dec(value),
		SumReceivedQty: dec(qty),
	}
}

// Los grupos conservan el orden de primera aparición de los saldos de
// entrada, no el alfabético.
func TestBuildReport_OrdenDePrimeraAparicion(t *testing.T) {
	buckets := []stock.Bucket{
		saldo("ZETA SARL", "NORTE", "-", "Pots", "10", "100"),
		saldo("ALFA SARL", "SUR", "-", "Futs", "5", "50"),
		saldo("ZETA SARL", "ESTE", "-", "Cartons", "2", "20"),
	}

	r := stock.BuildReport(buckets, false)
	require.Len(t, r.Owners, 2)
	assert.Equal(t, "ZETA SARL", r.Owners[0].Owner)
	assert.Equal(t, "ALFA SARL", r.Owners[1].Owner)

	require.Len(t, r.Owners[0].SubOwners, 2)
	assert.Equal(t, "NORTE", r.Owners[0].SubOwners[0].SubOwner)
	assert.Equal(t, "ESTE", r.Owners[0].SubOwners[1].SubOwner)
}

// Sin separación por año todos los saldos cuelgan del grupo YearAll.
func TestBuildReport_SinSeparacionUnSoloGrupo(t *testing.T) {
	buckets := []stock.Bucket{
		saldo("A", "C1", "-", "Pots", "10", "100"),
		saldo("A", "C1", "-", "Futs", "5", "50"),
	}

	r := stock.BuildReport(buckets, false)
	require.Len(t, r.Owners, 1)
	sg := r.Owners[0].SubOwners[0]
	require.Len(t, sg.Years, 1)
	assert.Equal(t, stock.YearAll, sg.Years[0].Year)
	assert.Len(t, sg.Years[0].Items, 2)
	assert.Nil(t, sg.Rollups)
}

// Subtotales coherentes en los tres niveles: cliente, propietario y total
// general.
func TestBuildReport_Subtotales(t *testing.T) {
	buckets := []stock.Bucket{
		saldo("A", "C1", "2024", "Pots", "10", "100.5"),
		saldo("A", "C1", "2023", "Pots", "4", "40"),
		saldo("A", "C2", "2024", "Futs", "2", "9.5"),
		saldo("B", "C3", "2024", "Cartons", "1", "50"),
	}

	r := stock.BuildReport(buckets, true)
	require.Len(t, r.Owners, 2)

	ownerA := r.Owners[0]
	assert.True(t, ownerA.TotalValue.Equal(dec("150")))
	assert.True(t, ownerA.SubOwners[0].TotalValue.Equal(dec("140.5")))
	assert.True(t, ownerA.SubOwners[1].TotalValue.Equal(dec("9.5")))
	assert.True(t, r.GrandTotal.Equal(dec("200")))

	// El total general es la suma de los totales por propietario.
	suma := decimal.Zero
	for _, og := range r.Owners {
		suma = suma.Add(og.TotalValue)
	}
	assert.True(t, r.GrandTotal.Equal(suma))
}

// El recapitulativo por producto solo se emite cuando el cliente abarca más
// de un año, sumando cantidad y valor entre años.
func TestBuildReport_RecapitulativoMultiAnio(t *testing.T) {
	buckets := []stock.Bucket{
		saldo("A", "C1", "2024", "Pots", "10", "100"),
		saldo("A", "C1", "2023", "Pots", "4", "40"),
		saldo("A", "C1", "2023", "Futs", "1", "10"),
		saldo("A", "C2", "2024", "Pots", "7", "70"),
	}

	r := stock.BuildReport(buckets, true)
	c1 := r.Owners[0].SubOwners[0]
	require.Len(t, c1.Years, 2)
	require.Len(t, c1.Rollups, 2)

	assert.Equal(t, "Pots", c1.Rollups[0].Product)
	assert.True(t, c1.Rollups[0].Qty.Equal(dec("14")))
	assert.True(t, c1.Rollups[0].Value.Equal(dec("140")))
	assert.Equal(t, "Futs", c1.Rollups[1].Product)

	// C2 tiene un solo año: sin recapitulativo.
	c2 := r.Owners[0].SubOwners[1]
	assert.Nil(t, c2.Rollups)
}

// La misma entrada produce el mismo informe: pantalla y exportación comparten
// totales bit a bit.
func TestBuildReport_Deterministico(t *testing.T) {
	buckets := []stock.Bucket{
		saldo("A", "C1", "2024", "Pots", "10", "100"),
		saldo("B", "C2", "2023", "Futs", "5", "50"),
	}
	r1 := stock.BuildReport(buckets, true)
	r2 := stock.BuildReport(buckets, true)
	assert.Equal(t, r1, r2)
}
