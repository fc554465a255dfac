package export

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

func saldo(product, owner, subOwner, year string, qty, value string) stock.Bucket {
	return stock.Bucket{
		Product:      product,
		Unit:         "KG",
		Owner:        owner,
		SubOwner:     subOwner,
		ClassCode:    "0303.54",
		Year:         year,
		CurrentQty:   decimal.RequireFromString(qty),
		CurrentValue: decimal.RequireFromString(value),
	}
}

func TestExportCSV_FormatoLegado(t *testing.T) {
	report := stock.BuildReport([]stock.Bucket{
		saldo("SARDINE ENTIÈRE", "ATLAS PÊCHE", "MAREYAGE SUD", "2024", "1250.5", "18757.5"),
		saldo("MAQUEREAU", "ATLAS PÊCHE", "MAREYAGE SUD", "2023", "300", "4200"),
	}, true)

	out, err := NewCSVExporter().ExportCSV(report)
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "\uFEFF"), "debe llevar BOM UTF-8")
	assert.Contains(t, text, "=== STOCK DISPONIBLE (PAR ANNÉE) ===")
	assert.Contains(t, text, "PRODUIT;NGP;ENTREPRISE;CLIENT;ANNÉE;QUANTITE;UNITE;VALEUR RESTANTE (DHS)")
	assert.Contains(t, text, "SARDINE ENTIÈRE;0303.54;ATLAS PÊCHE;MAREYAGE SUD;2024;1 250,50;KG;18 757,500")
	assert.Contains(t, text, "MAQUEREAU;0303.54;ATLAS PÊCHE;MAREYAGE SUD;2023;300,00;KG;4 200,000")
}

func TestExportCSV_SinSeparacionAnioCentinela(t *testing.T) {
	report := stock.BuildReport([]stock.Bucket{
		saldo("SARDINE ENTIÈRE", "ATLAS PÊCHE", "-", "-", "100", "1500"),
	}, false)

	out, err := NewCSVExporter().ExportCSV(report)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "=== STOCK DISPONIBLE ===")
	assert.Contains(t, text, "SARDINE ENTIÈRE;0303.54;ATLAS PÊCHE;-;-;100,00;KG;1 500,000")
}

func TestExportCSV_SeparadorEnCampoSeSustituye(t *testing.T) {
	b := saldo("SARDINE;ENTIÈRE", "ATLAS", "-", "-", "10", "150")
	report := stock.BuildReport([]stock.Bucket{b}, false)

	out, err := NewCSVExporter().ExportCSV(report)
	require.NoError(t, err)

	assert.Contains(t, string(out), "SARDINE,ENTIÈRE;0303.54;ATLAS")
}
