package stock

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domainstock "github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// ReportCSVExporter serializa el informe como texto delimitado.
type ReportCSVExporter interface {
	ExportCSV(report *domainstock.Report) ([]byte, error)
}

// ReportXLSXExporter serializa el informe como libro xlsx.
type ReportXLSXExporter interface {
	ExportXLSX(report *domainstock.Report) ([]byte, error)
}

// ReportPDFGenerator genera el documento paginado del informe, con anexos
// opcionales de histórico de movimientos.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, in PDFInput) ([]byte, error)
}

// PDFInput datos completos para el documento paginado.
type PDFInput struct {
	Report         *domainstock.Report
	GeneratedAt    time.Time
	ShowValues     bool
	IncludeHistory bool
	HistoryIns     []entity.Movement
	HistoryOuts    []entity.Movement
}

// Metrics puerto de observabilidad del motor; la implementación real vive en
// infraestructura (Prometheus). NopMetrics sirve para tests.
type Metrics interface {
	MovementSaved(kind string)
	MovementDeleted()
	SnapshotSize(n int)
	ReportBuilt(d time.Duration)
}

// NopMetrics implementación vacía del puerto de métricas.
type NopMetrics struct{}

func (NopMetrics) MovementSaved(string)      {}
func (NopMetrics) MovementDeleted()          {}
func (NopMetrics) SnapshotSize(int)          {}
func (NopMetrics) ReportBuilt(time.Duration) {}

var _ Metrics = NopMetrics{}
