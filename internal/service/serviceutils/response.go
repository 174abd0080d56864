// Package serviceutils holds the JSON response envelope shared by all
// HTTP handlers.
package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/pesocar/gip-registry/internal/logger"
)

// APIResponse is the uniform envelope for every handler reply.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseSuccess writes a success envelope with the given payload.
func ResponseSuccess(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ResponseError logs the error and writes a failure envelope. The raw error
// string is included so operators can correlate with the logs.
func ResponseError(c echo.Context, code int, message string, err error) error {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
		resp.Error = err.Error()
	}
	return c.JSON(code, resp)
}
