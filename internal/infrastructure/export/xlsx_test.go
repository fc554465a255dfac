package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

func TestExportXLSX_FilasYTotales(t *testing.T) {
	report := stock.BuildReport([]stock.Bucket{
		saldo("SARDINE ENTIÈRE", "ATLAS PÊCHE", "MAREYAGE SUD", "2024", "1250.5", "18757.5"),
		saldo("MAQUEREAU", "ATLAS PÊCHE", "MAREYAGE SUD", "2023", "300", "4200"),
	}, true)

	out, err := NewXLSXExporter().ExportXLSX(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	celda := func(ref string) string {
		v, err := f.GetCellValue("Stock", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "PRODUIT", celda("A1"))
	assert.Equal(t, "SARDINE ENTIÈRE", celda("A2"))
	assert.Equal(t, "2024", celda("E2"))
	assert.Equal(t, "MAQUEREAU", celda("A3"))
	assert.Equal(t, "2023", celda("E3"))
	assert.Equal(t, "TOTAL GÉNÉRAL", celda("A6"))
	assert.Equal(t, "22 957,500", celda("H6"))
}

func TestExportXLSX_SinSeparacionAnioCentinela(t *testing.T) {
	report := stock.BuildReport([]stock.Bucket{
		saldo("SARDINE ENTIÈRE", "ATLAS PÊCHE", "-", "-", "100", "1500"),
	}, false)

	out, err := NewXLSXExporter().ExportXLSX(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue("Stock", "E2")
	require.NoError(t, err)
	assert.Equal(t, "-", v)
}
