package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de
// movimientos. El motor de stock nunca lee de aquí directamente: consume
// instantáneas completas publicadas por el feed.
type MovementRepository interface {
	// Save inserta o reemplaza el movimiento por ID (upsert).
	Save(ctx context.Context, m *entity.Movement) error
	// Delete elimina el movimiento; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	// ListAll devuelve el libro completo ordenado por (fecha, creación):
	// el orden de iteración cronológico del que depende la atribución de año.
	ListAll(ctx context.Context) ([]entity.Movement, error)
}
