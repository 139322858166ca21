package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "sentiment-bot/internal/application"
)

// EngineRegistry сведения о доступности движков
type EngineRegistry interface {
	Status() []app.EngineStatus
	Enabled() bool
}

// HealthHandler обрабатывает проверки состояния
type HealthHandler struct {
	engines EngineRegistry
}

// NewHealthHandler создаёт обработчик проверок
func NewHealthHandler(engines EngineRegistry) *HealthHandler {
	return &HealthHandler{engines: engines}
}

// HealthStatus ответ /health
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health обрабатывает GET /health. Процесс жив, пока отвечает.
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	for _, st := range h.engines.Status() {
		if st.Available {
			components[st.Engine.String()] = "ok"
		} else {
			components[st.Engine.String()] = "unavailable: " + st.Reason
		}
	}
	c.JSON(http.StatusOK, HealthStatus{Status: "healthy", Components: components})
}

// Ready обрабатывает GET /ready: 503, если нет ни одного доступного движка
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.engines.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "no classification engines available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// RequireEnabled отвечает 503 на запросы классификации, если движков нет
func (h *HealthHandler) RequireEnabled() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.engines.Enabled() {
			respondError(c, ErrorResponse{
				StatusCode: http.StatusServiceUnavailable,
				Code:       "CLASSIFICATION_DISABLED",
				Message:    "no classification engines available",
			})
			return
		}
		c.Next()
	}
}

// Engines обрабатывает GET /api/v1/engines
func (h *HealthHandler) Engines(c *gin.Context) {
	respondOK(c, gin.H{"engines": h.engines.Status(), "enabled": h.engines.Enabled()})
}
