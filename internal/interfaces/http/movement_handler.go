package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	uc      *appstock.MovementUseCase
	reports *appstock.ReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *appstock.MovementUseCase, reports *appstock.ReportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, reports: reports}
}

// History godoc
// @Summary      Histórico de movimientos
// @Description  Entradas y salidas ordenadas por fecha descendente, con el
//
//	tramo de caducidad anotado en las entradas.
//
// @Tags         movements
// @Produce      json
// @Param        owner      query  string  false  "Empresa propietaria"
// @Param        sub_owner  query  string  false  "Cliente final"
// @Param        lot        query  string  false  "Subcadena de lote (sin distinguir mayúsculas)"
// @Param        from       query  string  false  "Cota inferior YYYY-MM-DD (inclusiva)"
// @Param        to         query  string  false  "Cota superior YYYY-MM-DD (inclusiva)"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	ins, outs, err := h.reports.History(c.Context(), q)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.HistoryResponse{Ins: ins, Outs: outs})
}

// Create godoc
// @Summary      Registrar movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveMovementRequest  true  "kind, date, product, unit, quantity; lot_ref obligatorio; total_value y expiry_date solo en entradas"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Save(c.Context(), "", in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update godoc
// @Summary      Corregir movimiento
// @Description  Reemplaza todos los campos del movimiento; el informe
//
//	siguiente refleja la corrección como si siempre hubiera sido así.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del movimiento"
// @Param        body  body  dto.SaveMovementRequest  true  "Movimiento completo"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Save(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// mapError traduce errores de dominio a estados HTTP.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
