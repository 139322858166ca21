package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// FileInfo сведения о загруженном файле
type FileInfo struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Size   int    `json:"size"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageAnalysis содержит результат анализа эмоций и картинку с подсветкой лиц
type ImageAnalysis struct {
	File         FileInfo             `json:"file"`
	Result       *entity.EngineResult `json:"result"`
	Annotated    []byte               `json:"-"`
	AnnotatedURL string               `json:"annotated_url,omitempty"`
}

// ImageService управляет анализом эмоций на фотографиях
type ImageService struct {
	classifier *Classifier
	decoder    port.ImageDecoder
	annotator  port.ImageAnnotator
	store      port.ImageStore
	logger     *zap.Logger
}

// NewImageService создаёт сервис анализа фото. annotator и store могут быть nil.
func NewImageService(classifier *Classifier, decoder port.ImageDecoder, annotator port.ImageAnnotator, store port.ImageStore, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{
		classifier: classifier,
		decoder:    decoder,
		annotator:  annotator,
		store:      store,
		logger:     logger,
	}
}

// Analyze декодирует фото, ищет лица и возвращает результат с подсветкой.
// Ошибки подсветки и сохранения не прерывают анализ.
func (s *ImageService) Analyze(ctx context.Context, data []byte, filename string) (*ImageAnalysis, error) {
	if !s.classifier.IsAvailable(entity.EngineFER) {
		return nil, fmt.Errorf("%w: %s", entity.ErrEngineUnavailable, entity.EngineFER)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image file", entity.ErrInvalidInput)
	}

	img, format, err := s.decoder.Decode(data)
	if err != nil {
		if entity.ErrorKind(err) == nil {
			err = fmt.Errorf("%w: decode image: %w", entity.ErrInvalidInput, err)
		}
		return nil, err
	}

	result, err := s.classifier.ClassifyImage(ctx, img)
	if err != nil {
		return nil, err
	}

	out := &ImageAnalysis{
		File: FileInfo{
			Name:   filename,
			Format: format,
			Size:   len(data),
			Width:  img.Width,
			Height: img.Height,
		},
		Result: result,
	}

	if s.annotator != nil && len(result.Subjects) > 0 {
		annotated, err := s.annotator.Annotate(ctx, data, result.Subjects)
		if err != nil {
			s.logger.Warn("failed to annotate image", zap.String("file", filename), zap.Error(err))
		} else {
			out.Annotated = annotated
		}
	}

	if s.store != nil && out.Annotated != nil {
		key := fmt.Sprintf("faces/%s.jpg", uuid.New().String())
		url, err := s.store.Save(ctx, key, out.Annotated, "image/jpeg")
		if err != nil {
			s.logger.Warn("failed to store annotated image", zap.String("key", key), zap.Error(err))
		} else {
			out.AnnotatedURL = url
		}
	}

	s.logger.Info("image analyzed",
		zap.String("file", filename),
		zap.Int("faces", len(result.Subjects)),
		zap.String("top", string(result.DisplayLabel())),
	)
	return out, nil
}
