package middlewares

import (
	"net/http"
	"strings"

	"github.com/c14220110/klinik-sentosa/internal/common/response"
	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Definisikan tipe kustom untuk context key
type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

// Session memberi tahu peran yang sedang login.
type Session interface {
	CurrentRole() (models.Role, bool)
}

// JWTMiddleware memeriksa token Bearer dan memastikan peran di token masih
// merupakan peran sesi yang aktif. Tidak ada pemeriksaan hak akses per halaman.
func JWTMiddleware(secret []byte, session Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Ambil header Authorization
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return response.JSON(c, http.StatusUnauthorized, "Authorization header missing", nil)
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return response.JSON(c, http.StatusUnauthorized, "Invalid authorization header", nil)
			}
			claims, err := utils.ValidateJWTToken(secret, parts[1])
			if err != nil {
				return response.JSON(c, http.StatusUnauthorized, "Invalid token: "+err.Error(), nil)
			}

			role, ok := session.CurrentRole()
			if !ok || string(role) != claims.Role {
				return response.JSON(c, http.StatusUnauthorized, "Sesi sudah berakhir, silakan login kembali", nil)
			}

			c.Set(string(ContextKeyClaims), claims)
			return next(c)
		}
	}
}
