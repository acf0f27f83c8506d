package routes

import (
	"github.com/c14220110/klinik-sentosa/internal/manajemen/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterDashboardRoutes(api *echo.Group, dc *controllers.DashboardController, auth echo.MiddlewareFunc) {
	dashboard := api.Group("/dashboard", auth)
	dashboard.GET("", dc.GetDashboard)
	dashboard.GET("/kunjungan", dc.ListKunjungan)
}
