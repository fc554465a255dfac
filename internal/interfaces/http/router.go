package http

import (
	"github.com/gofiber/fiber/v2"

	appstock "github.com/jhoicas/Almacen-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementUC *appstock.MovementUseCase
	ReportUC   *appstock.ReportUseCase
	ExportUC   *appstock.ExportUseCase
	LookupUC   *appstock.LookupUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Movimientos (libro)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ReportUC)
	movements.Get("/", movementHandler.History)
	movements.Post("/", movementHandler.Create)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Informe de stock y exportaciones
	stockGroup := api.Group("/stock")
	reportHandler := NewReportHandler(deps.ReportUC)
	stockGroup.Get("/", reportHandler.Report)

	exportHandler := NewExportHandler(deps.ExportUC)
	stockGroup.Get("/export/csv", exportHandler.CSV)
	stockGroup.Get("/export/xlsx", exportHandler.XLSX)
	stockGroup.Get("/export/pdf", exportHandler.PDF)

	// Listas maestras
	lookupHandler := NewLookupHandler(deps.LookupUC)
	api.Get("/lookups", lookupHandler.Lists)
}
