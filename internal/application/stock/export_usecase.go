package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	domainstock "github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// ExportUseCase produce las tres salidas del informe (CSV, XLSX, PDF) a
// partir del MISMO constructor de jerarquía que la vista en pantalla: los
// totales son idénticos bit a bit para la misma consulta.
type ExportUseCase struct {
	reports *ReportUseCase
	csv     ReportCSVExporter
	xlsx    ReportXLSXExporter
	pdf     ReportPDFGenerator
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(
	reports *ReportUseCase,
	csv ReportCSVExporter,
	xlsx ReportXLSXExporter,
	pdf ReportPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{reports: reports, csv: csv, xlsx: xlsx, pdf: pdf}
}

// ExportCSV genera el informe delimitado. Devuelve (contenido, nombre).
func (uc *ExportUseCase) ExportCSV(ctx context.Context, q dto.ExportQuery) ([]byte, string, error) {
	report, err := uc.reports.BuildReport(ctx, q.ReportQuery)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.csv.ExportCSV(report)
	if err != nil {
		return nil, "", fmt.Errorf("exportar csv: %w", err)
	}
	return data, exportFilename("csv"), nil
}

// ExportXLSX genera el libro xlsx del informe.
func (uc *ExportUseCase) ExportXLSX(ctx context.Context, q dto.ExportQuery) ([]byte, string, error) {
	report, err := uc.reports.BuildReport(ctx, q.ReportQuery)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.xlsx.ExportXLSX(report)
	if err != nil {
		return nil, "", fmt.Errorf("exportar xlsx: %w", err)
	}
	return data, exportFilename("xlsx"), nil
}

// ExportPDF genera el documento paginado, con anexos de histórico si se
// piden. Los anexos aplican el mismo filtro que la vista de histórico:
// propiedad, ventana [from, to] y subcadena de lote.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, q dto.ExportQuery) ([]byte, string, error) {
	filter, err := uc.reports.toFilter(q.ReportQuery)
	if err != nil {
		return nil, "", err
	}
	report, err := uc.reports.BuildReport(ctx, q.ReportQuery)
	if err != nil {
		return nil, "", err
	}

	in := PDFInput{
		Report:         report,
		GeneratedAt:    time.Now().UTC(),
		ShowValues:     q.ShowValues,
		IncludeHistory: q.IncludeHistory,
	}
	if q.IncludeHistory {
		historyFilter, err := historyFilterFromExport(filter, q)
		if err != nil {
			return nil, "", err
		}
		in.HistoryIns, in.HistoryOuts = domainstock.FilterMovements(
			uc.reports.feed.Snapshot(), historyFilter)
	}

	data, err := uc.pdf.GenerateReportPDF(ctx, in)
	if err != nil {
		return nil, "", fmt.Errorf("exportar pdf: %w", err)
	}
	return data, exportFilename("pdf"), nil
}

func exportFilename(ext string) string {
	return fmt.Sprintf("Rapport_Stock_%s.%s", time.Now().UTC().Format(dto.DateFormat), ext)
}
