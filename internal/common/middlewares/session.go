package middlewares

import (
	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/pkg/utils"
	"github.com/labstack/echo/v4"
)

// RoleFromContext returns the role stored by JWTMiddleware.
func RoleFromContext(c echo.Context) (models.Role, bool) {
	claims, ok := c.Get(string(ContextKeyClaims)).(*utils.Claims)
	if !ok || claims == nil {
		return "", false
	}
	return models.Role(claims.Role), true
}
