package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IDNLab/ddl-parser/internal/typemap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// statusFor maps pipeline errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case typemap.IsConfigError(err):
		return http.StatusBadRequest
	case errors.Is(err, typemap.ErrEmptyInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
