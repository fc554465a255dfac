// Package metrics expone los contadores Prometheus del motor de stock.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
)

var _ appstock.Metrics = (*Prometheus)(nil)

// Prometheus implementa el puerto de métricas registrando en el registro por
// defecto (lo sirve promhttp en /metrics).
type Prometheus struct {
	movementsSaved   *prometheus.CounterVec
	movementsDeleted prometheus.Counter
	snapshotSize     prometheus.Gauge
	reportDuration   prometheus.Histogram
}

// NewPrometheus registra y devuelve los colectores.
func NewPrometheus() *Prometheus {
	return &Prometheus{
		movementsSaved: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "almacen",
			Name:      "movements_saved_total",
			Help:      "Movimientos guardados (altas y reemplazos), por tipo.",
		}, []string{"kind"}),
		movementsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "almacen",
			Name:      "movements_deleted_total",
			Help:      "Movimientos eliminados.",
		}),
		snapshotSize: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "almacen",
			Name:      "snapshot_movements",
			Help:      "Movimientos en la instantánea vigente del libro.",
		}),
		reportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "almacen",
			Name:      "report_build_seconds",
			Help:      "Duración del cálculo completo del informe de stock.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (p *Prometheus) MovementSaved(kind string) { p.movementsSaved.WithLabelValues(kind).Inc() }
func (p *Prometheus) MovementDeleted()          { p.movementsDeleted.Inc() }
func (p *Prometheus) SnapshotSize(n int)        { p.snapshotSize.Set(float64(n)) }
func (p *Prometheus) ReportBuilt(d time.Duration) {
	p.reportDuration.Observe(d.Seconds())
}
