package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
)

// ExportHandler sirve las descargas del informe (CSV, XLSX, PDF).
type ExportHandler struct {
	uc *appstock.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *appstock.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Exportar informe como CSV
// @Description  CSV legado: BOM UTF-8, separador ";", formato numérico francés.
// @Tags         stock
// @Produce      text/csv
// @Param        owner           query  string  false  "Empresa propietaria"
// @Param        sub_owner       query  string  false  "Cliente final"
// @Param        to              query  string  false  "Fecha de corte YYYY-MM-DD"
// @Param        separate_years  query  bool    false  "Separar por año"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	return h.export(c, h.uc.ExportCSV, "text/csv; charset=utf-8")
}

// XLSX godoc
// @Summary      Exportar informe como libro xlsx
// @Tags         stock
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        owner           query  string  false  "Empresa propietaria"
// @Param        sub_owner       query  string  false  "Cliente final"
// @Param        to              query  string  false  "Fecha de corte YYYY-MM-DD"
// @Param        separate_years  query  bool    false  "Separar por año"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/export/xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	return h.export(c, h.uc.ExportXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// PDF godoc
// @Summary      Exportar informe como PDF
// @Description  Documento paginado con la jerarquía completa; con
//
//	include_history añade anexos de entradas y salidas.
//
// @Tags         stock
// @Produce      application/pdf
// @Param        owner            query  string  false  "Empresa propietaria"
// @Param        sub_owner        query  string  false  "Cliente final"
// @Param        to               query  string  false  "Fecha de corte YYYY-MM-DD"
// @Param        separate_years   query  bool    false  "Separar por año"
// @Param        from             query  string  false  "Cota inferior de los anexos YYYY-MM-DD"
// @Param        lot              query  string  false  "Subcadena de lote para los anexos"
// @Param        show_values      query  bool    false  "Incluir columnas de valor"
// @Param        include_history  query  bool    false  "Anexar histórico de movimientos"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	return h.export(c, h.uc.ExportPDF, "application/pdf")
}

func (h *ExportHandler) export(c *fiber.Ctx, fn func(ctx context.Context, q dto.ExportQuery) ([]byte, string, error), contentType string) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, filename, err := fn(c.Context(), q)
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
