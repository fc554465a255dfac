package export

import (
	"bytes"
	"strings"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

var _ appstock.ReportCSVExporter = (*CSVExporter)(nil)

// CSVExporter produce el CSV legado: BOM UTF-8, separador ";", una fila
// plana por saldo. Excel francés lo abre directamente.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

const csvSep = ";"

// ExportCSV serializa el informe. Las filas salen en el orden del informe
// (misma jerarquía que pantalla y PDF, aplanada).
func (e *CSVExporter) ExportCSV(report *stock.Report) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	title := "=== STOCK DISPONIBLE ==="
	if report.SeparateYears {
		title = "=== STOCK DISPONIBLE (PAR ANNÉE) ==="
	}
	buf.WriteString(title + "\n")
	buf.WriteString("PRODUIT;NGP;ENTREPRISE;CLIENT;ANNÉE;QUANTITE;UNITE;VALEUR RESTANTE (DHS)\n")

	for _, og := range report.Owners {
		for _, sg := range og.SubOwners {
			for _, yg := range sg.Years {
				for _, b := range yg.Items {
					// Sin separación el saldo lleva el centinela "-",
					// igual que la pantalla legada.
					writeRow(&buf,
						b.Product, b.ClassCode, b.Owner, b.SubOwner, b.Year,
						FormatQty(b.CurrentQty), b.Unit, FormatValue(b.CurrentValue),
					)
				}
			}
		}
	}
	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(csvSep)
		}
		// El separador dentro de un campo rompería la fila; se sustituye.
		buf.WriteString(strings.ReplaceAll(f, csvSep, ","))
	}
	buf.WriteByte('\n')
}
