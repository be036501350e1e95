package handler

import (
	"net/http"

	"inventory/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, response.Envelope{
		Message: "Service is healthy",
		Data:    map[string]string{"status": "ok"},
	})
}
