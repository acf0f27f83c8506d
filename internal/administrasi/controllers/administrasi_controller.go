package controllers

import (
	"net/http"
	"time"

	"github.com/c14220110/klinik-sentosa/internal/administrasi/models"
	"github.com/c14220110/klinik-sentosa/internal/common/middlewares"
	"github.com/c14220110/klinik-sentosa/internal/common/response"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/c14220110/klinik-sentosa/pkg/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const tokenTTL = 12 * time.Hour

// AdministrasiController menangani login, logout dan info sesi.
type AdministrasiController struct {
	Store  *store.Store
	Secret []byte
	Log    *zap.SugaredLogger
}

func NewAdministrasiController(s *store.Store, secret []byte, log *zap.SugaredLogger) *AdministrasiController {
	return &AdministrasiController{Store: s, Secret: secret, Log: log}
}

// Login memilih peran tanpa kredensial dan mengembalikan token sesi.
func (ac *AdministrasiController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}
	role, err := klinik.ParseRole(req.Role)
	if err != nil {
		return response.BadRequest(c, "Peran tidak dikenal")
	}

	now := time.Now()
	token, err := utils.GenerateJWTToken(ac.Secret, string(role), now, now.Add(tokenTTL))
	if err != nil {
		return response.JSON(c, http.StatusInternalServerError, "Gagal membuat token: "+err.Error(), nil)
	}
	ac.Store.Login(role)
	ac.Log.Infow("session started", "role", role)

	return response.OK(c, "Login berhasil", map[string]interface{}{
		"token": token,
		"role":  role,
		"menu":  role.Menu(),
	})
}

func (ac *AdministrasiController) Logout(c echo.Context) error {
	ac.Store.Logout()
	ac.Log.Infow("session ended")
	return response.OK(c, "Logout berhasil", nil)
}

// Session mengembalikan peran aktif dan menu navigasinya.
func (ac *AdministrasiController) Session(c echo.Context) error {
	role, ok := middlewares.RoleFromContext(c)
	if !ok {
		return response.JSON(c, http.StatusUnauthorized, "Sesi tidak ditemukan", nil)
	}
	return response.OK(c, "Sesi aktif", map[string]interface{}{
		"role": role,
		"menu": role.Menu(),
	})
}
