package controllers

import (
	"github.com/c14220110/klinik-sentosa/internal/common/response"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/labstack/echo/v4"
)

// ApotekController melayani antrian peracikan resep.
type ApotekController struct {
	Store *store.Store
	Hub   response.Publisher
}

func NewApotekController(s *store.Store, hub response.Publisher) *ApotekController {
	return &ApotekController{Store: s, Hub: hub}
}

func (ac *ApotekController) ListAntrian(c echo.Context) error {
	queue, err := ac.Store.Queue(klinik.StatusPharmacyQueue)
	if err != nil {
		return response.Error(c, "Gagal mengambil antrian apotek", err)
	}
	return response.OK(c, "Antrian apotek berhasil diambil", queue)
}

// SelesaikanResep menandai obat sudah disiapkan dan meneruskan ke kasir.
func (ac *ApotekController) SelesaikanResep(c echo.Context) error {
	visit, err := ac.Store.ProcessPrescription(c.Param("id"))
	if err != nil {
		return response.Error(c, "Gagal menyelesaikan resep", err)
	}
	response.PublishVisit(ac.Hub, visit)
	return response.OK(c, "Obat telah disiapkan dan diteruskan ke kasir", visit)
}
