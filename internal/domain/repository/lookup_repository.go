package repository

import "context"

// LookupRepository expone las listas maestras que alimentan los filtros y el
// formulario de captura (nombres de producto, empresas, clientes). El motor
// de agregación no las consume.
type LookupRepository interface {
	Products(ctx context.Context) ([]string, error)
	Owners(ctx context.Context) ([]string, error)
	SubOwners(ctx context.Context) ([]string, error)
}
