package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, r *gin.Engine, header string) Envelope {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestRespondOK(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		c.Set(RequestIDKey, "test-request-id")
		useEngine(c, entity.EngineFlair)
		respondOK(c, map[string]string{"label": "Neutral"})
	})

	env := serve(t, router, "")
	assert.True(t, env.Success)
	assert.Equal(t, map[string]interface{}{"label": "Neutral"}, env.Data)
	assert.Nil(t, env.Error)
	assert.Equal(t, "test-request-id", env.Meta.RequestID)
	assert.Equal(t, "flair", env.Meta.Engine)
	assert.False(t, env.Meta.Timestamp.IsZero())
}

func TestRespondError_AbortsChain(t *testing.T) {
	reached := false
	router := gin.New()
	router.GET("/test",
		func(c *gin.Context) {
			respondError(c, ErrorResponse{StatusCode: http.StatusBadRequest, Code: "INVALID_REQUEST", Message: "bad"})
		},
		func(c *gin.Context) { reached = true },
	)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, reached)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	assert.Equal(t, "bad", env.Error.Message)
	assert.Empty(t, env.Meta.Engine)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestRequestID_Fallback(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) { respondOK(c, nil) })

	assert.Equal(t, "from-header", serve(t, router, "from-header").Meta.RequestID)

	first := serve(t, router, "").Meta.RequestID
	second := serve(t, router, "").Meta.RequestID
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
