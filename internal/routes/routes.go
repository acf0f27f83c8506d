package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	adminControllers "github.com/c14220110/klinik-sentosa/internal/administrasi/controllers"
	adminRoutes "github.com/c14220110/klinik-sentosa/internal/administrasi/routes"
	apotekControllers "github.com/c14220110/klinik-sentosa/internal/apotek/controllers"
	apotekRoutes "github.com/c14220110/klinik-sentosa/internal/apotek/routes"
	"github.com/c14220110/klinik-sentosa/internal/common/middlewares"
	dokterControllers "github.com/c14220110/klinik-sentosa/internal/dokter/controllers"
	dokterRoutes "github.com/c14220110/klinik-sentosa/internal/dokter/routes"
	kasirControllers "github.com/c14220110/klinik-sentosa/internal/kasir/controllers"
	kasirRoutes "github.com/c14220110/klinik-sentosa/internal/kasir/routes"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	manajemenControllers "github.com/c14220110/klinik-sentosa/internal/manajemen/controllers"
	manajemenRoutes "github.com/c14220110/klinik-sentosa/internal/manajemen/routes"
	"github.com/c14220110/klinik-sentosa/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, s *store.Store, hub *ws.Hub, jwtSecret []byte, log *zap.SugaredLogger) {
	auth := middlewares.JWTMiddleware(jwtSecret, s)

	// Inisialisasi controller
	adminController := adminControllers.NewAdministrasiController(s, jwtSecret, log)
	pasienController := adminControllers.NewPasienController(s, hub)
	dokterController := dokterControllers.NewDokterController(s, hub)
	resepController := dokterControllers.NewResepController(s, hub)
	apotekController := apotekControllers.NewApotekController(s, hub)
	pembayaranController := kasirControllers.NewPembayaranController(s, hub, log)
	dashboardController := manajemenControllers.NewDashboardController(s)

	// Grup API utama
	api := e.Group("/api")

	adminRoutes.RegisterAuthRoutes(api, adminController, auth)
	adminRoutes.RegisterPendaftaranRoutes(api, pasienController, auth)
	dokterRoutes.RegisterDokterRoutes(api, dokterController, resepController, auth)
	apotekRoutes.RegisterApotekRoutes(api, apotekController, auth)
	kasirRoutes.RegisterKasirRoutes(api, pembayaranController, auth)
	manajemenRoutes.RegisterDashboardRoutes(api, dashboardController, auth)

	// Feed antrian real-time, tidak pakai JWT
	e.GET("/ws", ws.ServeWS(hub))
}
