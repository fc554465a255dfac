package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

var _ appstock.ReportXLSXExporter = (*XLSXExporter)(nil)

// XLSXExporter produce el libro xlsx del informe: encabezado, una fila por
// saldo, subtotales por cliente y empresa y total general al final.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// ExportXLSX serializa el informe en una hoja "Stock".
func (e *XLSXExporter) ExportXLSX(report *stock.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Stock"
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header := []interface{}{
		"PRODUIT", "NGP", "ENTREPRISE", "CLIENT", "ANNÉE",
		"QUANTITE", "UNITE", "VALEUR RESTANTE (DHS)",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "H1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	row := 2
	put := func(values []interface{}, style int) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		if style != 0 {
			last, _ := excelize.CoordinatesToCellName(len(values), row)
			if err := f.SetCellStyle(sheet, cell, last, style); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for _, og := range report.Owners {
		for _, sg := range og.SubOwners {
			for _, yg := range sg.Years {
				for _, b := range yg.Items {
					values := []interface{}{
						b.Product, b.ClassCode, b.Owner, b.SubOwner, b.Year,
						FormatQty(b.CurrentQty), b.Unit, FormatValue(b.CurrentValue),
					}
					if err := put(values, 0); err != nil {
						return nil, fmt.Errorf("xlsx: fila: %w", err)
					}
				}
			}
			subtotal := []interface{}{
				"", "", "", "TOTAL " + sg.SubOwner, "", "", "", FormatValue(sg.TotalValue),
			}
			if err := put(subtotal, bold); err != nil {
				return nil, fmt.Errorf("xlsx: subtotal cliente: %w", err)
			}
		}
		subtotal := []interface{}{
			"", "", "TOTAL " + og.Owner, "", "", "", "", FormatValue(og.TotalValue),
		}
		if err := put(subtotal, bold); err != nil {
			return nil, fmt.Errorf("xlsx: subtotal empresa: %w", err)
		}
	}

	total := []interface{}{
		"TOTAL GÉNÉRAL", "", "", "", "", "", "", FormatValue(report.GrandTotal),
	}
	if err := put(total, bold); err != nil {
		return nil, fmt.Errorf("xlsx: total general: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
