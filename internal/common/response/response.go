// Package response menulis amplop JSON {status, message, data} yang dipakai semua endpoint.
package response

import (
	"errors"
	"net/http"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/labstack/echo/v4"
)

func JSON(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func OK(c echo.Context, message string, data interface{}) error {
	return JSON(c, http.StatusOK, message, data)
}

func BadRequest(c echo.Context, message string) error {
	return JSON(c, http.StatusBadRequest, message, nil)
}

// Error memetakan error dari store ke kode HTTP yang sesuai.
func Error(c echo.Context, message string, err error) error {
	return JSON(c, StatusFor(err), message+": "+err.Error(), nil)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrVisitNotFound),
		errors.Is(err, store.ErrPatientNotFound),
		errors.Is(err, store.ErrMedicineNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPaymentMethod),
		errors.Is(err, models.ErrInvalidRole):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Publisher menerima event perubahan antrian, biasanya ws.Hub.
type Publisher interface {
	Publish(eventType string, data interface{})
}
