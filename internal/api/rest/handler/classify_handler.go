package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	app "sentiment-bot/internal/application"
	"sentiment-bot/internal/domain/entity"
)

// maxImageSize предельный размер загружаемого фото
const maxImageSize = 10 << 20

// TextClassifier классифицирует текст выбранным движком
type TextClassifier interface {
	ClassifyText(ctx context.Context, id entity.EngineID, text string) (*entity.EngineResult, error)
}

// ImageAnalyzer анализирует эмоции на фото
type ImageAnalyzer interface {
	Analyze(ctx context.Context, data []byte, filename string) (*app.ImageAnalysis, error)
}

// MovieAnalyzer анализирует отзывы о фильмах
type MovieAnalyzer interface {
	Analyze(ctx context.Context, query string, engine entity.EngineID) (*app.MovieReport, error)
}

// ClassifyHandler обрабатывает запросы классификации
type ClassifyHandler struct {
	text   TextClassifier
	images ImageAnalyzer
	movies MovieAnalyzer
}

// NewClassifyHandler создаёт обработчик классификации
func NewClassifyHandler(text TextClassifier, images ImageAnalyzer, movies MovieAnalyzer) *ClassifyHandler {
	return &ClassifyHandler{text: text, images: images, movies: movies}
}

// ClassifyTextRequest тело POST /api/v1/classify/text
type ClassifyTextRequest struct {
	Engine string `json:"engine" binding:"required"`
	Text   string `json:"text"`
}

// AnalyzeMovieRequest тело POST /api/v1/movies/analyze
type AnalyzeMovieRequest struct {
	Query  string `json:"query" binding:"required"`
	Engine string `json:"engine"`
}

// ClassifyText обрабатывает POST /api/v1/classify/text
func (h *ClassifyHandler) ClassifyText(c *gin.Context) {
	var req ClassifyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	id, err := entity.ParseEngineID(req.Engine)
	if err != nil {
		HandleError(c, err)
		return
	}
	useEngine(c, id)

	result, err := h.text.ClassifyText(c.Request.Context(), id, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	respondOK(c, result)
}

// ClassifyImage обрабатывает POST /api/v1/classify/image (multipart, поле "image")
func (h *ClassifyHandler) ClassifyImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		HandleInvalidRequest(c, "image file is required")
		return
	}
	if file.Size > maxImageSize {
		HandleInvalidRequest(c, fmt.Sprintf("image is too large: %d bytes", file.Size))
		return
	}

	f, err := file.Open()
	if err != nil {
		HandleInvalidRequest(c, "failed to open image file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		HandleInvalidRequest(c, "failed to read image file")
		return
	}

	useEngine(c, entity.EngineFER)
	analysis, err := h.images.Analyze(c.Request.Context(), data, file.Filename)
	if err != nil {
		HandleError(c, err)
		return
	}

	respondOK(c, analysis)
}

// AnalyzeMovie обрабатывает POST /api/v1/movies/analyze. Движок по умолчанию vader.
func (h *ClassifyHandler) AnalyzeMovie(c *gin.Context) {
	var req AnalyzeMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	id := entity.DefaultTextEngine
	if req.Engine != "" {
		parsed, err := entity.ParseEngineID(req.Engine)
		if err != nil {
			HandleError(c, err)
			return
		}
		id = parsed
	}
	useEngine(c, id)

	report, err := h.movies.Analyze(c.Request.Context(), req.Query, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	respondOK(c, report)
}
