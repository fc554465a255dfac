// Package pdf implementa el documento paginado del informe de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BANNER: RAPPORT DE STOCK + fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada ENTREPRISE:                                        │
//	│    Por cada CLIENT:                                          │
//	│      [ANNÉE: aaaa]  filas Produit|NGP|...|Quantité|Valeur    │
//	│      RÉCAPITULATIF PRODUITS (cliente multi-año)              │
//	│      TOTAL CLIENT                                            │
//	│    TOTAL ENTREPRISE                                          │
//	│  TOTAL GÉNÉRAL                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Anexos opcionales: HISTORIQUE DES ENTRÉES / DES SORTIES     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 21, Green: 128, Blue: 61}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

var _ appstock.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa stock.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF genera el documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, in appstock.PDFInput) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Rapport de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(bannerRows(in.GeneratedAt)...)
	m.AddRows(line.NewRow(2))

	m.AddRows(sectionTitleRow("STOCK DISPONIBLE", 12))

	for _, og := range in.Report.Owners {
		m.AddRows(ownerHeaderRow(og.Owner))
		for _, sg := range og.SubOwners {
			m.AddRows(subOwnerHeaderRow(sg.SubOwner))
			m.AddRows(tableHeaderRow(in.Report.SeparateYears, in.ShowValues))
			for _, yg := range sg.Years {
				if in.Report.SeparateYears {
					m.AddRows(yearHeaderRow(yg.Year))
				}
				for _, b := range yg.Items {
					m.AddRows(bucketRow(b, in.Report.SeparateYears, in.ShowValues))
				}
			}
			if len(sg.Rollups) > 0 {
				m.AddRows(rollupHeaderRow(sg.SubOwner))
				for _, rr := range sg.Rollups {
					m.AddRows(rollupRow(rr, in.Report.SeparateYears, in.ShowValues))
				}
			}
			if in.ShowValues || in.Report.SeparateYears {
				m.AddRows(subtotalRow("TOTAL CLIENT: "+sg.SubOwner, sg.TotalValue, in.ShowValues, 9))
			}
		}
		if in.ShowValues {
			m.AddRows(subtotalRow("TOTAL ENTREPRISE: "+og.Owner, og.TotalValue, true, 10))
		}
	}

	if in.ShowValues {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
		m.AddRows(grandTotalRow(in.Report))
	}

	if in.IncludeHistory {
		m.AddRows(line.NewRow(4))
		m.AddRows(sectionTitleRow("HISTORIQUE DES ENTRÉES", 11))
		m.AddRows(historyHeaderRow(colorGreen, true, in.ShowValues))
		for i := range in.HistoryIns {
			m.AddRows(historyRow(&in.HistoryIns[i], true, in.ShowValues))
		}

		m.AddRows(line.NewRow(4))
		m.AddRows(sectionTitleRow("HISTORIQUE DES SORTIES", 11))
		m.AddRows(historyHeaderRow(colorRed, false, false))
		for i := range in.HistoryOuts {
			m.AddRows(historyRow(&in.HistoryOuts[i], false, false))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// bannerRows: título y fecha de generación.
func bannerRows(generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(16).Add(
			col.New(12).Add(
				text.New("RAPPORT DE STOCK", props.Text{
					Style: fontstyle.Bold, Size: 18, Align: align.Center,
					Color: colorPrimary, Top: 3,
				}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New("Généré le : "+generatedAt.Format("02/01/2006"), props.Text{
					Size: 9, Align: align.Center, Color: colorGray, Top: 1,
				}),
			),
		),
	}
}

func sectionTitleRow(title string, size float64) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: size, Top: 1}),
	))
}

// ownerHeaderRow: banda de empresa (fondo azul en el legado; aquí texto azul).
func ownerHeaderRow(owner string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("ENTREPRISE: "+owner, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
		}),
	))
}

func subOwnerHeaderRow(subOwner string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("CLIENT: "+subOwner, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Left: 2,
		}),
	))
}

func yearHeaderRow(year string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("ANNÉE: "+year, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1, Left: 4,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de saldos. El ancho de las columnas
// depende de si se muestran año y valor.
func tableHeaderRow(separateYears, showValues bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{
		h("Produit", productColSpan(separateYears, showValues), align.Left),
		h("NGP", 2, align.Left),
	}
	if separateYears {
		cols = append(cols, h("Année", 1, align.Center))
	}
	cols = append(cols,
		h("Quantité", 2, align.Right),
		h("Unité", 1, align.Center),
	)
	if showValues {
		cols = append(cols, h("Valeur (Dhs)", 2, align.Right))
	}
	return row.New(6).Add(cols...)
}

// productColSpan: la columna de producto absorbe el espacio de las columnas
// opcionales (grilla maroto de 12).
func productColSpan(separateYears, showValues bool) int {
	span := 7
	if separateYears {
		span--
	}
	if showValues {
		span -= 2
	}
	return span
}

func bucketRow(b stock.Bucket, separateYears, showValues bool) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{
		cell(b.Product, productColSpan(separateYears, showValues), align.Left),
		cell(b.ClassCode, 2, align.Left),
	}
	if separateYears {
		cols = append(cols, cell(b.Year, 1, align.Center))
	}
	cols = append(cols,
		cell(export.FormatQty(b.CurrentQty), 2, align.Right),
		cell(b.Unit, 1, align.Center),
	)
	if showValues {
		cols = append(cols, cell(export.FormatValue(b.CurrentValue), 2, align.Right))
	}
	return row.New(5).Add(cols...)
}

func rollupHeaderRow(subOwner string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("RÉCAPITULATIF PRODUITS - "+subOwner, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1,
		}),
	))
}

func rollupRow(rr stock.RollupRow, separateYears, showValues bool) core.Row {
	cell := func(s string, size int, a align.Type, style fontstyle.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Style: style, Top: 1, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{
		cell(rr.Product, productColSpan(separateYears, showValues), align.Left, fontstyle.Bold),
		cell("-", 2, align.Left, fontstyle.Normal),
	}
	if separateYears {
		cols = append(cols, cell("TOTAL", 1, align.Center, fontstyle.Bold))
	}
	cols = append(cols,
		cell(export.FormatQty(rr.Qty), 2, align.Right, fontstyle.Bold),
		cell(rr.Unit, 1, align.Center, fontstyle.Normal),
	)
	if showValues {
		cols = append(cols, cell(export.FormatValue(rr.Value), 2, align.Right, fontstyle.Bold))
	}
	return row.New(5).Add(cols...)
}

func subtotalRow(label string, value decimal.Decimal, showValues bool, size float64) core.Row {
	if !showValues {
		return row.New(6).Add(col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 1, Top: 1,
			}),
		))
	}
	return row.New(6).Add(
		col.New(10).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2, Top: 1,
		})),
		col.New(2).Add(text.New(export.FormatValue(value), props.Text{
			Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 1, Top: 1,
		})),
	)
}

func grandTotalRow(r *stock.Report) core.Row {
	return row.New(9).Add(
		col.New(10).Add(text.New("TOTAL GÉNÉRAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 1,
		})),
		col.New(2).Add(text.New(export.FormatValue(r.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 1,
		})),
	)
}

// ── Histórico ─────────────────────────────────────────────────────────────────

func historyHeaderRow(bg *props.Color, incoming, showValues bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: bg, Top: 1, Left: 1,
		}))
	}
	lotLabel := "DUM Réf"
	if !incoming {
		lotLabel = "DUM Entrée Réf"
	}
	cols := []core.Col{
		h("Date", 1, align.Left),
		h("Produit", historyProductSpan(showValues), align.Left),
		h("NGP", 1, align.Left),
		h("Qté", 1, align.Right),
		h("Unité", 1, align.Center),
		h(lotLabel, 2, align.Left),
		h("Entreprise", 2, align.Left),
		h("Client", 1, align.Left),
	}
	if showValues {
		cols = append(cols, h("Valeur (Dhs)", 1, align.Right))
	}
	return row.New(6).Add(cols...)
}

func historyProductSpan(showValues bool) int {
	if showValues {
		return 2
	}
	return 3
}

func historyRow(m *entity.Movement, incoming, showValues bool) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 6.5, Align: a, Top: 1, Left: 1,
		}))
	}
	cols := []core.Col{
		cell(export.FormatDate(m.Date), 1, align.Left),
		cell(m.Product, historyProductSpan(showValues), align.Left),
		cell(orDash(m.ClassCode), 1, align.Left),
		cell(export.FormatQty(m.Quantity), 1, align.Right),
		cell(m.Unit, 1, align.Center),
		cell(orDash(m.LotRef), 2, align.Left),
		cell(orDash(m.Owner), 2, align.Left),
		cell(orDash(m.SubOwner), 1, align.Left),
	}
	if showValues && incoming {
		cols = append(cols, cell(export.FormatValue(m.ValueOrZero()), 1, align.Right))
	}
	return row.New(5).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
