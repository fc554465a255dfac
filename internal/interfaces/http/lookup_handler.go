package http

import (
	"github.com/gofiber/fiber/v2"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
)

// LookupHandler sirve las listas maestras.
type LookupHandler struct {
	uc *appstock.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *appstock.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Lists godoc
// @Summary      Listas maestras
// @Description  Productos, empresas y clientes conocidos, para filtros y formulario.
// @Tags         lookups
// @Produce      json
// @Success      200  {object}  dto.LookupsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/lookups [get]
func (h *LookupHandler) Lists(c *fiber.Ctx) error {
	out, err := h.uc.Lists(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
