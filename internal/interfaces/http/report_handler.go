package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
)

// ReportHandler sirve el informe jerárquico de stock disponible.
type ReportHandler struct {
	uc *appstock.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appstock.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Report godoc
// @Summary      Informe de stock disponible
// @Description  Saldos por producto agrupados empresa → cliente → año, con
//
//	subtotales y total general. Mismo cálculo que las exportaciones.
//
// @Tags         stock
// @Produce      json
// @Param        owner           query  string  false  "Empresa propietaria"
// @Param        sub_owner       query  string  false  "Cliente final"
// @Param        to              query  string  false  "Fecha de corte YYYY-MM-DD (inclusiva)"
// @Param        separate_years  query  bool    false  "Separar saldos por año de llegada"
// @Success      200  {object}  dto.StockReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	report, err := h.uc.BuildReport(c.Context(), q)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.FromReport(report))
}
