package routes

import (
	"github.com/c14220110/klinik-sentosa/internal/apotek/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterApotekRoutes(api *echo.Group, ac *controllers.ApotekController, auth echo.MiddlewareFunc) {
	apotek := api.Group("/apotek", auth)
	apotek.GET("/antrian", ac.ListAntrian)
	apotek.PUT("/:id/selesai", ac.SelesaikanResep)
}
