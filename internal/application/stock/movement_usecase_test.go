package stock_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria para los tests de aplicación
// ──────────────────────────────────────────────────────────────────────────────

type memRepo struct {
	mu   sync.Mutex
	movs map[string]entity.Movement
}

func newMemRepo() *memRepo {
	return &memRepo{movs: make(map[string]entity.Movement)}
}

func (r *memRepo) Save(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movs[m.ID] = *m
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.movs, id)
	return nil
}

func (r *memRepo) ListAll(_ context.Context) ([]entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Movement, 0, len(r.movs))
	for _, m := range r.movs {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func peticionEntrada() dto.SaveMovementRequest {
	value := decimal.RequireFromString("1000")
	return dto.SaveMovementRequest{
		Kind:       entity.MovementKindIN,
		Date:       "2024-01-10",
		Product:    "Anchois Frais",
		Unit:       entity.UnitKG,
		Quantity:   decimal.RequireFromString("100"),
		LotRef:     "DUM-001",
		Owner:      "DAM PECHE SARL",
		TotalValue: &value,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Save / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Guardar un movimiento válido persiste y publica una instantánea nueva.
func TestMovementUseCase_SaveRecargaFeed(t *testing.T) {
	repo := newMemRepo()
	feed := stock.NewFeed(repo)
	uc := stock.NewMovementUseCase(repo, feed, nil)

	id, err := uc.Save(context.Background(), "", peticionEntrada())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	snapshot := feed.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Anchois Frais", snapshot[0].Product)
	assert.Equal(t, id, snapshot[0].ID)
}

// Guardar con id existente reemplaza el movimiento (upsert), no lo duplica.
func TestMovementUseCase_SaveConIDReemplaza(t *testing.T) {
	repo := newMemRepo()
	feed := stock.NewFeed(repo)
	uc := stock.NewMovementUseCase(repo, feed, nil)

	id, err := uc.Save(context.Background(), "", peticionEntrada())
	require.NoError(t, err)

	corregida := peticionEntrada()
	corregida.Quantity = decimal.RequireFromString("120")
	id2, err := uc.Save(context.Background(), id, corregida)
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	snapshot := feed.Snapshot()
	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[0].Quantity.Equal(decimal.RequireFromString("120")))
}

// La validación rechaza lo mismo que rechazaba el formulario de captura.
func TestMovementUseCase_Validacion(t *testing.T) {
	repo := newMemRepo()
	uc := stock.NewMovementUseCase(repo, stock.NewFeed(repo), nil)

	casos := []struct {
		nombre  string
		mutar   func(*dto.SaveMovementRequest)
	}{
		{"kind desconocido", func(r *dto.SaveMovementRequest) { r.Kind = "ADJUST" }},
		{"unidad desconocida", func(r *dto.SaveMovementRequest) { r.Unit = "TON" }},
		{"sin producto", func(r *dto.SaveMovementRequest) { r.Product = "" }},
		{"sin lote", func(r *dto.SaveMovementRequest) { r.LotRef = "" }},
		{"cantidad cero", func(r *dto.SaveMovementRequest) { r.Quantity = decimal.Zero }},
		{"cantidad negativa", func(r *dto.SaveMovementRequest) { r.Quantity = decimal.RequireFromString("-5") }},
		{"fecha inválida", func(r *dto.SaveMovementRequest) { r.Date = "10/01/2024" }},
		{"caducidad inválida", func(r *dto.SaveMovementRequest) { r.ExpiryDate = "mañana" }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			req := peticionEntrada()
			c.mutar(&req)
			_, err := uc.Save(context.Background(), "", req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Valor y caducidad se descartan en salidas: solo las entradas los llevan.
func TestMovementUseCase_SalidaDescartaValorYCaducidad(t *testing.T) {
	repo := newMemRepo()
	feed := stock.NewFeed(repo)
	uc := stock.NewMovementUseCase(repo, feed, nil)

	req := peticionEntrada()
	req.Kind = entity.MovementKindOUT
	req.ExpiryDate = "2024-06-30"

	_, err := uc.Save(context.Background(), "", req)
	require.NoError(t, err)

	snapshot := feed.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Nil(t, snapshot[0].TotalValue)
	assert.Nil(t, snapshot[0].ExpiryDate)
}

// Borrar un movimiento inexistente devuelve ErrNotFound; borrar uno real lo
// quita de la siguiente instantánea.
func TestMovementUseCase_Delete(t *testing.T) {
	repo := newMemRepo()
	feed := stock.NewFeed(repo)
	uc := stock.NewMovementUseCase(repo, feed, nil)

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id, err := uc.Save(context.Background(), "", peticionEntrada())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), id))
	assert.Empty(t, feed.Snapshot())
}
