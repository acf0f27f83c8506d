package controllers

import (
	"github.com/c14220110/klinik-sentosa/internal/common/response"
	"github.com/c14220110/klinik-sentosa/internal/dokter/models"
	"github.com/c14220110/klinik-sentosa/internal/dokter/services"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/labstack/echo/v4"
)

type ResepController struct {
	Service *services.ResepService
	Hub     response.Publisher
}

func NewResepController(s *store.Store, hub response.Publisher) *ResepController {
	return &ResepController{Service: services.NewResepService(s), Hub: hub}
}

// POST /api/kunjungan/:id/diagnosis
func (rc *ResepController) SubmitDiagnosis(c echo.Context) error {
	var req models.DiagnosisRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}
	if msg := req.Validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	visit, err := rc.Service.SubmitDiagnosis(c.Param("id"), req)
	if err != nil {
		return response.Error(c, "Gagal menyimpan diagnosis", err)
	}
	response.PublishVisit(rc.Hub, visit)

	msg := "Resep telah dikirim ke bagian pembayaran"
	if visit.Status == klinik.StatusPharmacyQueue {
		msg = "Resep telah dikirim ke apotek"
	}
	return response.OK(c, msg, visit)
}

// GET /api/obat?q=amox
func (rc *ResepController) GetObatList(c echo.Context) error {
	return response.OK(c, "Data obat berhasil diambil", rc.Service.SearchObat(c.QueryParam("q")))
}
