package controllers

import (
	"net/http"
	"strings"

	"github.com/c14220110/klinik-sentosa/internal/administrasi/models"
	"github.com/c14220110/klinik-sentosa/internal/administrasi/services"
	"github.com/c14220110/klinik-sentosa/internal/common/response"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/labstack/echo/v4"
)

type PasienController struct {
	Store   *store.Store
	Service *services.PendaftaranService
	Hub     response.Publisher
}

func NewPasienController(s *store.Store, hub response.Publisher) *PasienController {
	return &PasienController{Store: s, Service: services.NewPendaftaranService(s), Hub: hub}
}

// ListPasien mencari pasien berdasarkan nama atau nomor RM (?q=).
func (pc *PasienController) ListPasien(c echo.Context) error {
	return response.OK(c, "Data pasien berhasil diambil", pc.Store.SearchPatients(c.QueryParam("q")))
}

// RegisterPasien mendaftarkan pasien baru + kunjungan + broadcast WS
func (pc *PasienController) RegisterPasien(c echo.Context) error {
	var req models.NewPasienRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}
	if msg := req.Validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	patient, visit, err := pc.Service.RegisterPasienWithKunjungan(req.PatientInput(), strings.TrimSpace(req.Complaint))
	if err != nil {
		return response.Error(c, "Gagal mendaftarkan pasien", err)
	}
	response.PublishVisit(pc.Hub, visit)

	return response.JSON(c, http.StatusCreated, "Pasien "+patient.Name+" telah ditambahkan ke antrian dokter", map[string]interface{}{
		"pasien":    patient,
		"kunjungan": visit,
	})
}

// CreateKunjungan mendaftarkan kunjungan baru untuk pasien lama.
func (pc *PasienController) CreateKunjungan(c echo.Context) error {
	var req models.KunjunganRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}
	if msg := req.Validate(); msg != "" {
		return response.BadRequest(c, msg)
	}
	patient, visit, err := pc.Service.CreateKunjunganPasienLama(req.PatientID, strings.TrimSpace(req.Complaint))
	if err != nil {
		return response.Error(c, "Gagal membuat kunjungan", err)
	}
	response.PublishVisit(pc.Hub, visit)

	return response.JSON(c, http.StatusCreated, "Pasien "+patient.Name+" telah ditambahkan ke antrian dokter", visit)
}
