package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

func informeDePrueba() *stock.Report {
	dec := decimal.RequireFromString
	return stock.BuildReport([]stock.Bucket{
		{
			Product: "SARDINE ENTIÈRE", Unit: "KG", Owner: "ATLAS PÊCHE",
			SubOwner: "MAREYAGE SUD", ClassCode: "0303.54", Year: "2024",
			CurrentQty: dec("1250.5"), CurrentValue: dec("18757.5"),
		},
		{
			Product: "SARDINE ENTIÈRE", Unit: "KG", Owner: "ATLAS PÊCHE",
			SubOwner: "MAREYAGE SUD", ClassCode: "0303.54", Year: "2023",
			CurrentQty: dec("300"), CurrentValue: dec("4200"),
		},
	}, true)
}

func TestGenerateReportPDF_DocumentoCompleto(t *testing.T) {
	valor := decimal.RequireFromString("18757.5")
	in := appstock.PDFInput{
		Report:         informeDePrueba(),
		GeneratedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ShowValues:     true,
		IncludeHistory: true,
		HistoryIns: []entity.Movement{{
			ID: "a", Kind: entity.MovementKindIN,
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Product: "SARDINE ENTIÈRE", Unit: "KG",
			Quantity: decimal.RequireFromString("1250.5"),
			LotRef:   "DUM-100", Owner: "ATLAS PÊCHE", SubOwner: "MAREYAGE SUD",
			TotalValue: &valor,
		}},
		HistoryOuts: []entity.Movement{{
			ID: "b", Kind: entity.MovementKindOUT,
			Date:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Product: "SARDINE ENTIÈRE", Unit: "KG",
			Quantity: decimal.RequireFromString("40"),
			LotRef:   "DUM-100", Owner: "ATLAS PÊCHE", SubOwner: "MAREYAGE SUD",
		}},
	}

	data, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateReportPDF_SinValoresNiHistorico(t *testing.T) {
	in := appstock.PDFInput{
		Report:      informeDePrueba(),
		GeneratedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	data, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
