package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sentiment-bot/internal/domain/entity"
)

// RequestIDKey ключ gin.Context, под которым middleware.RequestID хранит идентификатор
const RequestIDKey = "request_id"

const engineKey = "engine"

// Envelope конверт ответов /api/v1: при Success заполнено Data, иначе Error
type Envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    Meta      `json:"meta"`
}

// APIError машинный код и текст ошибки
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta время ответа, идентификатор запроса и движок, если запрос его указал
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Engine    string    `json:"engine,omitempty"`
}

// useEngine запоминает движок запроса для meta.engine
func useEngine(c *gin.Context, id entity.EngineID) {
	c.Set(engineKey, id.String())
}

// requestID без middleware.RequestID берёт X-Request-ID или создаёт новый
func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	return id
}

func newMeta(c *gin.Context) Meta {
	return Meta{
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		RequestID: requestID(c),
		Engine:    c.GetString(engineKey),
	}
}

// respondOK отвечает 200 с данными
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: newMeta(c)})
}

// respondError отвечает ошибкой и прерывает цепочку обработчиков
func respondError(c *gin.Context, e ErrorResponse) {
	c.AbortWithStatusJSON(e.StatusCode, Envelope{
		Error: &APIError{Code: e.Code, Message: e.Message},
		Meta:  newMeta(c),
	})
}
