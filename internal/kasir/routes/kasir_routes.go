package routes

import (
	"github.com/c14220110/klinik-sentosa/internal/kasir/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterKasirRoutes(api *echo.Group, pc *controllers.PembayaranController, auth echo.MiddlewareFunc) {
	kasir := api.Group("/kasir", auth)
	kasir.GET("/antrian", pc.ListTagihan)
	kasir.POST("/:id/bayar", pc.Bayar)
}
