package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentiment-bot/internal/domain/entity"
)

// ErrorResponse HTTP-представление ошибки
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapError сопоставляет ошибку классификации с HTTP-ответом
func MapError(err error) ErrorResponse {
	switch {
	case errors.Is(err, entity.ErrUnsupportedEngine):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Code: "UNSUPPORTED_ENGINE", Message: err.Error()}
	case errors.Is(err, entity.ErrInvalidInput):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, entity.ErrEngineUnavailable):
		return ErrorResponse{StatusCode: http.StatusServiceUnavailable, Code: "ENGINE_UNAVAILABLE", Message: err.Error()}
	case errors.Is(err, entity.ErrUpstreamFailure):
		return ErrorResponse{StatusCode: http.StatusBadGateway, Code: "UPSTREAM_FAILURE", Message: err.Error()}
	default:
		return ErrorResponse{StatusCode: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "internal server error"}
	}
}

// HandleError отвечает клиенту по результату MapError
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
	respondError(c, MapError(err))
}

// HandleInvalidRequest отвечает 400 на некорректное тело запроса
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, ErrorResponse{StatusCode: http.StatusBadRequest, Code: "INVALID_REQUEST", Message: message})
}
