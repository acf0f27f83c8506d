package controllers

import (
	"github.com/c14220110/klinik-sentosa/internal/common/response"
	"github.com/c14220110/klinik-sentosa/internal/dokter/models"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/labstack/echo/v4"
)

type DokterController struct {
	Store *store.Store
	Hub   response.Publisher
}

func NewDokterController(s *store.Store, hub response.Publisher) *DokterController {
	return &DokterController{Store: s, Hub: hub}
}

// ListAntrian mengembalikan antrian dokter. Default status "waiting",
// bisa diganti dengan ?status=in-consultation.
func (dc *DokterController) ListAntrian(c echo.Context) error {
	status := klinik.StatusWaiting
	if raw := c.QueryParam("status"); raw != "" {
		s, err := klinik.ParseVisitStatus(raw)
		if err != nil {
			return response.BadRequest(c, "Status tidak valid")
		}
		status = s
	}
	queue, err := dc.Store.Queue(status)
	if err != nil {
		return response.Error(c, "Gagal mengambil antrian", err)
	}
	return response.OK(c, "Antrian berhasil diambil", queue)
}

// MulaiKonsultasi memindahkan pasien dari antrian ke ruang periksa.
func (dc *DokterController) MulaiKonsultasi(c echo.Context) error {
	visit, err := dc.Store.StartConsultation(c.Param("id"))
	if err != nil {
		return response.Error(c, "Gagal memulai konsultasi", err)
	}
	response.PublishVisit(dc.Hub, visit)
	return response.OK(c, "Konsultasi dimulai", visit)
}

// UpdateStatus mengganti status kunjungan tanpa validasi alur.
func (dc *DokterController) UpdateStatus(c echo.Context) error {
	var req models.StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}
	status, err := klinik.ParseVisitStatus(req.Status)
	if err != nil {
		return response.BadRequest(c, "Status tidak valid")
	}
	visit, err := dc.Store.UpdateVisitStatus(c.Param("id"), status)
	if err != nil {
		return response.Error(c, "Gagal mengubah status", err)
	}
	response.PublishVisit(dc.Hub, visit)
	return response.OK(c, "Status kunjungan diperbarui", visit)
}
