package routes

import (
	"github.com/c14220110/klinik-sentosa/internal/dokter/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterDokterRoutes(api *echo.Group, dc *controllers.DokterController, rc *controllers.ResepController, auth echo.MiddlewareFunc) {
	api.GET("/dokter/antrian", dc.ListAntrian, auth)
	api.GET("/obat", rc.GetObatList, auth)

	kunjungan := api.Group("/kunjungan/:id", auth)
	kunjungan.PUT("/mulai", dc.MulaiKonsultasi)
	kunjungan.PUT("/status", dc.UpdateStatus)
	kunjungan.POST("/diagnosis", rc.SubmitDiagnosis)
}
