package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sib-bolivia/aranceles-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArancelUC  *usecase.ArancelUseCase
	OpcionesUC *usecase.OpcionesUseCase
}

// Router registra las rutas de la API. Todas son públicas: el cálculo del
// arancel es un servicio abierto a los colegiados y al público.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	aranceles := api.Group("/aranceles")
	handler := NewArancelHandler(deps.ArancelUC, deps.OpcionesUC)
	aranceles.Post("/calcular", handler.Calcular)
	aranceles.Post("/tarifario", handler.Tarifario)
	aranceles.Get("/opciones", handler.Opciones)
}
