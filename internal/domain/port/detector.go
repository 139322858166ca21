package port

import (
	"context"

	"sentiment-bot/internal/domain/entity"
)

// FaceScores сырое распределение эмоций одного лица в терминах движка
type FaceScores struct {
	Box    entity.Box
	Scores map[string]float64
}

// FaceDetection ответ движка эмоций лиц.
// Top: собственная сводка движка по всему изображению.
type FaceDetection struct {
	Faces    []FaceScores
	Top      string
	TopScore float64
}

// FaceEmotionDetector интерфейс детектора эмоций на лицах
type FaceEmotionDetector interface {
	// DetectEmotions находит лица и оценивает эмоции каждого
	DetectEmotions(ctx context.Context, img *entity.Image) (*FaceDetection, error)
}

// ImageDecoder декодирует байты файла в пиксельную сетку
type ImageDecoder interface {
	// Decode возвращает изображение и имя формата (jpeg, png)
	Decode(data []byte) (*entity.Image, string, error)
}

// ImageAnnotator интерфейс отрисовки найденных лиц
type ImageAnnotator interface {
	// Annotate рисует рамки и метки лиц и возвращает JPEG
	Annotate(ctx context.Context, imageData []byte, subjects []entity.DetectedSubject) ([]byte, error)
}
