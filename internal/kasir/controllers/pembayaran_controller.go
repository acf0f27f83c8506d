package controllers

import (
	"github.com/c14220110/klinik-sentosa/internal/common/response"
	"github.com/c14220110/klinik-sentosa/internal/kasir/models"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PembayaranController menangani tagihan di kasir.
type PembayaranController struct {
	Store *store.Store
	Hub   response.Publisher
	Log   *zap.SugaredLogger
}

func NewPembayaranController(s *store.Store, hub response.Publisher, log *zap.SugaredLogger) *PembayaranController {
	return &PembayaranController{Store: s, Hub: hub, Log: log}
}

// ListTagihan mengembalikan kunjungan yang menunggu pembayaran.
func (pc *PembayaranController) ListTagihan(c echo.Context) error {
	queue, err := pc.Store.Queue(klinik.StatusPaymentPending)
	if err != nil {
		return response.Error(c, "Gagal mengambil tagihan", err)
	}
	return response.OK(c, "Tagihan berhasil diambil", queue)
}

func (pc *PembayaranController) Bayar(c echo.Context) error {
	var req models.PembayaranRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}
	method, err := klinik.ParsePaymentMethod(req.Method)
	if err != nil {
		return response.BadRequest(c, "Metode pembayaran harus 'cash' atau 'transfer'")
	}

	visit, err := pc.Store.ProcessPayment(c.Param("id"), method)
	if err != nil {
		return response.Error(c, "Gagal memproses pembayaran", err)
	}
	pc.Log.Infow("payment recorded", "visit_id", visit.ID, "method", method, "amount", visit.TotalCost)
	response.PublishVisit(pc.Hub, visit)

	msg := "Transaksi tunai telah dicatat"
	if method == klinik.PaymentTransfer {
		msg = "Transaksi transfer berhasil diverifikasi"
	}
	return response.OK(c, msg, visit)
}
