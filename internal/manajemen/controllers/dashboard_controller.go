package controllers

import (
	"strconv"

	"github.com/c14220110/klinik-sentosa/internal/common/response"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/c14220110/klinik-sentosa/internal/manajemen/models"
	"github.com/labstack/echo/v4"
)

const (
	defaultHariGrafik = 7
	maxHariGrafik     = 90
	defaultLimit      = 20
	maxLimit          = 200
)

type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

// GetDashboard handles GET /api/dashboard?hari=7
func (dc *DashboardController) GetDashboard(c echo.Context) error {
	hari := defaultHariGrafik
	if s := c.QueryParam("hari"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxHariGrafik {
			return response.BadRequest(c, "invalid hari")
		}
		hari = v
	}

	return response.OK(c, "Dashboard data retrieved successfully", models.DashboardData{
		Pendapatan:       dc.Store.Revenue(),
		PendapatanHarian: dc.Store.RevenueHistory(hari),
		Ringkasan:        dc.Store.Summary(),
	})
}

// ListKunjungan handles GET /api/dashboard/kunjungan?limit=20, terbaru lebih dulu.
func (dc *DashboardController) ListKunjungan(c echo.Context) error {
	limit := defaultLimit
	if s := c.QueryParam("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxLimit {
			return response.BadRequest(c, "invalid limit")
		}
		limit = v
	}

	visits := dc.Store.Visits()
	rows := make([]models.KunjunganRow, 0, min(limit, len(visits)))
	for i := len(visits) - 1; i >= 0 && len(rows) < limit; i-- {
		v := visits[i]
		p, err := dc.Store.Patient(v.PatientID)
		if err != nil {
			return response.Error(c, "Data kunjungan rusak", err)
		}
		rows = append(rows, models.KunjunganRow{
			ID:          v.ID,
			NamaPasien:  p.Name,
			NoRM:        p.MRNumber,
			Status:      v.Status,
			TotalBiaya:  v.TotalCost,
			MetodeBayar: v.PaymentMethod,
			Tanggal:     v.Date,
		})
	}
	return response.OK(c, "Data kunjungan berhasil diambil", rows)
}
