package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Save inserta el movimiento o reemplaza todos sus campos si el ID ya existe.
func (r *MovementRepo) Save(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, kind, date, product, unit, quantity, lot_ref, class_code, owner, sub_owner, total_value, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			date = EXCLUDED.date,
			product = EXCLUDED.product,
			unit = EXCLUDED.unit,
			quantity = EXCLUDED.quantity,
			lot_ref = EXCLUDED.lot_ref,
			class_code = EXCLUDED.class_code,
			owner = EXCLUDED.owner,
			sub_owner = EXCLUDED.sub_owner,
			total_value = EXCLUDED.total_value,
			expiry_date = EXCLUDED.expiry_date`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Kind, m.Date, m.Product, m.Unit, m.Quantity,
		m.LotRef, m.ClassCode, m.Owner, m.SubOwner,
		m.TotalValue, m.ExpiryDate, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve el libro completo en orden cronológico (fecha, creación).
// Ese orden es el que fija la atribución de año de llegada por lote.
func (r *MovementRepo) ListAll(ctx context.Context) ([]entity.Movement, error) {
	query := `
		SELECT id, kind, date, product, unit, quantity, lot_ref, class_code, owner, sub_owner, total_value, expiry_date, created_at
		FROM movements
		ORDER BY date ASC, created_at ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Kind, &m.Date, &m.Product, &m.Unit, &m.Quantity,
			&m.LotRef, &m.ClassCode, &m.Owner, &m.SubOwner,
			&m.TotalValue, &m.ExpiryDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
