package stock

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Feed publica instantáneas completas e inmutables del libro de movimientos.
// Cada mutación dispara Reload: se relee el libro entero y se reemplaza la
// instantánea anterior; nunca se aplican deltas incrementales, así que no hay
// estados parciales que sincronizar. Los consumidores tratan la instantánea
// como solo lectura.
type Feed struct {
	repo repository.MovementRepository

	mu       sync.RWMutex
	snapshot []entity.Movement
	subs     []chan []entity.Movement
}

// NewFeed construye el feed sin cargar datos; llamar Reload al arrancar.
func NewFeed(repo repository.MovementRepository) *Feed {
	return &Feed{repo: repo}
}

// Reload relee el libro completo y publica la nueva instantánea a todos los
// suscriptores. Los suscriptores lentos pierden instantáneas intermedias
// (solo interesa la última: los resultados superados se descartan).
func (f *Feed) Reload(ctx context.Context) error {
	movements, err := f.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("feed: recargar libro: %w", err)
	}

	f.mu.Lock()
	f.snapshot = movements
	subs := make([]chan []entity.Movement, len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- movements:
		default:
			// descarta: el suscriptor aún no consumió la anterior
		}
	}
	return nil
}

// Snapshot devuelve la última instantánea publicada. El slice es compartido:
// los consumidores no deben mutarlo.
func (f *Feed) Snapshot() []entity.Movement {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot
}

// Subscribe registra un canal que recibirá cada instantánea nueva. El canal
// tiene búfer 1; si el consumidor va atrasado solo conserva la más reciente
// pendiente.
func (f *Feed) Subscribe() <-chan []entity.Movement {
	ch := make(chan []entity.Movement, 1)
	f.mu.Lock()
	f.subs = append(f.subs, ch)
	f.mu.Unlock()
	return ch
}

// ObserveFeed publica el tamaño del libro en el medidor de métricas: fija el
// valor de la instantánea actual y luego consume cada publicación del feed en
// segundo plano hasta que ctx se cancela.
func ObserveFeed(ctx context.Context, feed *Feed, metrics Metrics) {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	metrics.SnapshotSize(len(feed.Snapshot()))
	ch := feed.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case snap := <-ch:
				metrics.SnapshotSize(len(snap))
			}
		}
	}()
}
