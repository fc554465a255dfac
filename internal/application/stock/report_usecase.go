package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	domainstock "github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// ReportUseCase calcula el informe de saldos y el histórico sobre la última
// instantánea del feed. Cada invocación recalcula desde cero: costos de lote
// sobre el libro COMPLETO, saldos sobre el libro filtrado, jerarquía de
// presentación al final. Nada se cachea entre instantáneas.
type ReportUseCase struct {
	feed    *Feed
	metrics Metrics
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(feed *Feed, metrics Metrics) *ReportUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &ReportUseCase{feed: feed, metrics: metrics}
}

// BuildReport ejecuta la cadena completa del motor para la consulta dada y
// devuelve la jerarquía lista para pantalla o exportación.
func (uc *ReportUseCase) BuildReport(_ context.Context, q dto.ReportQuery) (*domainstock.Report, error) {
	filter, err := uc.toFilter(q)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	snapshot := uc.feed.Snapshot()
	// El resolutor de costos ignora los filtros activos: una salida filtrada
	// sigue valorándose contra el lote completo.
	lotCosts := domainstock.ResolveLotCosts(snapshot)
	buckets := domainstock.Aggregate(snapshot, filter, lotCosts)
	report := domainstock.BuildReport(buckets, filter.SeparateYears)
	uc.metrics.ReportBuilt(time.Since(start))

	return report, nil
}

// History aplica el filtro completo de histórico (ventana [from, to]
// inclusiva, propiedad, subcadena de lote) sobre la instantánea actual.
func (uc *ReportUseCase) History(_ context.Context, q dto.HistoryQuery) (ins, outs []dto.MovementDTO, err error) {
	filter := domainstock.HistoryFilter{
		Owner:    q.Owner,
		SubOwner: q.SubOwner,
		LotQuery: q.Lot,
	}
	if filter.From, err = parseDate(q.From); err != nil {
		return nil, nil, err
	}
	if filter.To, err = parseDate(q.To); err != nil {
		return nil, nil, err
	}

	rawIns, rawOuts := domainstock.FilterMovements(uc.feed.Snapshot(), filter)
	today := time.Now().UTC()
	return dto.MovementsToDTO(rawIns, today), dto.MovementsToDTO(rawOuts, today), nil
}

// historyFilterFromExport deriva el filtro de los anexos PDF de la consulta
// de exportación: misma propiedad y cota superior que el informe, más la
// ventana inferior y la subcadena de lote que usaba la vista de histórico.
func historyFilterFromExport(f domainstock.Filter, q dto.ExportQuery) (domainstock.HistoryFilter, error) {
	from, err := parseDate(q.From)
	if err != nil {
		return domainstock.HistoryFilter{}, err
	}
	return domainstock.HistoryFilter{
		Owner:    f.Owner,
		SubOwner: f.SubOwner,
		LotQuery: q.Lot,
		From:     from,
		To:       f.To,
	}, nil
}

func (uc *ReportUseCase) toFilter(q dto.ReportQuery) (domainstock.Filter, error) {
	to, err := parseDate(q.To)
	if err != nil {
		return domainstock.Filter{}, err
	}
	return domainstock.Filter{
		Owner:         q.Owner,
		SubOwner:      q.SubOwner,
		To:            to,
		SeparateYears: q.SeparateYears,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dto.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}
