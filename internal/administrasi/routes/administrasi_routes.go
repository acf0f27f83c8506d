package routes

import (
	"github.com/c14220110/klinik-sentosa/internal/administrasi/controllers"
	"github.com/labstack/echo/v4"
)

// RegisterAuthRoutes mendaftarkan login (tanpa JWT) dan endpoint sesi.
func RegisterAuthRoutes(api *echo.Group, ac *controllers.AdministrasiController, auth echo.MiddlewareFunc) {
	g := api.Group("/auth")
	g.POST("/login", ac.Login) // Tidak pakai JWT
	g.POST("/logout", ac.Logout, auth)
	g.GET("/session", ac.Session, auth)
}

// RegisterPendaftaranRoutes mendaftarkan endpoint bagian pendaftaran.
func RegisterPendaftaranRoutes(api *echo.Group, pc *controllers.PasienController, auth echo.MiddlewareFunc) {
	api.GET("/pasien", pc.ListPasien, auth)
	api.POST("/pasien/register", pc.RegisterPasien, auth)
	api.POST("/kunjungan", pc.CreateKunjungan, auth)
}
