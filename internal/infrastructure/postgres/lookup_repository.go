package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.LookupRepository = (*LookupRepo)(nil)

// LookupRepo listas maestras (productos, empresas, clientes) sobre PostgreSQL.
type LookupRepo struct {
	q Querier
}

// NewLookupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLookupRepository(q Querier) *LookupRepo {
	return &LookupRepo{q: q}
}

// Products devuelve el catálogo de nombres de producto ordenado alfabéticamente.
func (r *LookupRepo) Products(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM products ORDER BY name`)
}

// Owners devuelve las empresas propietarias registradas.
func (r *LookupRepo) Owners(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM owners ORDER BY name`)
}

// SubOwners devuelve los clientes finales registrados.
func (r *LookupRepo) SubOwners(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM sub_owners ORDER BY name`)
}

func (r *LookupRepo) listNames(ctx context.Context, query string) ([]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list lookup: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
