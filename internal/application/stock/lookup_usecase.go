package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LookupUseCase sirve las listas maestras de filtros y formulario.
type LookupUseCase struct {
	repo repository.LookupRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(repo repository.LookupRepository) *LookupUseCase {
	return &LookupUseCase{repo: repo}
}

// Lists devuelve productos, empresas y clientes conocidos.
func (uc *LookupUseCase) Lists(ctx context.Context) (dto.LookupsResponse, error) {
	var out dto.LookupsResponse
	var err error
	if out.Products, err = uc.repo.Products(ctx); err != nil {
		return out, fmt.Errorf("listar productos: %w", err)
	}
	if out.Owners, err = uc.repo.Owners(ctx); err != nil {
		return out, fmt.Errorf("listar empresas: %w", err)
	}
	if out.SubOwners, err = uc.repo.SubOwners(ctx); err != nil {
		return out, fmt.Errorf("listar clientes: %w", err)
	}
	return out, nil
}
