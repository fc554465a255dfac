package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MovementUseCase registra, corrige y elimina movimientos del libro. La
// validación vive aquí, antes de que el registro llegue al libro: el motor de
// cálculo asume entradas ya validadas y no produce errores.
type MovementUseCase struct {
	repo    repository.MovementRepository
	feed    *Feed
	metrics Metrics
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository, feed *Feed, metrics Metrics) *MovementUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &MovementUseCase{repo: repo, feed: feed, metrics: metrics}
}

// Save valida y persiste un movimiento; con id vacío crea uno nuevo, con id
// se reemplaza el existente. Tras persistir recarga el feed: el resto del
// sistema ve una instantánea nueva completa, nunca un delta.
func (uc *MovementUseCase) Save(ctx context.Context, id string, in dto.SaveMovementRequest) (string, error) {
	m, err := uc.toEntity(id, in)
	if err != nil {
		return "", err
	}
	if err := uc.repo.Save(ctx, m); err != nil {
		return "", fmt.Errorf("guardar movimiento: %w", err)
	}
	uc.metrics.MovementSaved(m.Kind)
	if err := uc.feed.Reload(ctx); err != nil {
		return "", err
	}
	return m.ID, nil
}

// Delete elimina un movimiento y recarga el feed.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.metrics.MovementDeleted()
	if err := uc.feed.Reload(ctx); err != nil {
		return err
	}
	return nil
}

// toEntity valida el request (los mismos campos obligatorios que imponía el
// formulario de captura: producto, cantidad positiva, lote, fecha) y lo
// convierte en entidad.
func (uc *MovementUseCase) toEntity(id string, in dto.SaveMovementRequest) (*entity.Movement, error) {
	if in.Kind != entity.MovementKindIN && in.Kind != entity.MovementKindOUT {
		return nil, fmt.Errorf("%w: kind debe ser IN u OUT", domain.ErrInvalidInput)
	}
	if in.Unit != entity.UnitKG && in.Unit != entity.UnitCount {
		return nil, fmt.Errorf("%w: unit debe ser KG o UNIT", domain.ErrInvalidInput)
	}
	if in.Product == "" || in.LotRef == "" {
		return nil, fmt.Errorf("%w: producto y lote son obligatorios", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	if in.TotalValue != nil && in.TotalValue.IsNegative() {
		return nil, fmt.Errorf("%w: el valor no puede ser negativo", domain.ErrInvalidInput)
	}

	date, err := time.Parse(dto.DateFormat, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, in.Date)
	}

	m := &entity.Movement{
		ID:        id,
		Kind:      in.Kind,
		Date:      date,
		Product:   in.Product,
		Unit:      in.Unit,
		Quantity:  in.Quantity,
		LotRef:    in.LotRef,
		ClassCode: in.ClassCode,
		Owner:     in.Owner,
		SubOwner:  in.SubOwner,
		CreatedAt: time.Now().UTC(),
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	// Valor y caducidad solo aplican a entradas; en salidas se descartan.
	if in.Kind == entity.MovementKindIN {
		if in.TotalValue != nil {
			v := *in.TotalValue
			m.TotalValue = &v
		}
		if in.ExpiryDate != "" {
			exp, err := time.Parse(dto.DateFormat, in.ExpiryDate)
			if err != nil {
				return nil, fmt.Errorf("%w: fecha de caducidad inválida %q", domain.ErrInvalidInput, in.ExpiryDate)
			}
			m.ExpiryDate = &exp
		}
	}
	return m, nil
}
