package emotion

import (
	"context"
	"fmt"
	"image"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// FaceLocator ищет лица на изображении
type FaceLocator interface {
	LocateFaces(ctx context.Context, img *entity.Image) ([]entity.Box, error)
}

// CropClassifier оценивает эмоции на вырезанном лице
type CropClassifier interface {
	ClassifyCrop(ctx context.Context, crop image.Image) (map[string]float64, error)
}

// FER детектор эмоций: поиск лиц + классификация каждого лица
type FER struct {
	locator    FaceLocator
	classifier CropClassifier
}

// NewFER собирает детектор из поиска лиц и классификатора
func NewFER(locator FaceLocator, classifier CropClassifier) *FER {
	return &FER{locator: locator, classifier: classifier}
}

// DetectEmotions находит лица и оценивает эмоции каждого.
// Top: максимальная эмоция первого лица.
func (f *FER) DetectEmotions(ctx context.Context, img *entity.Image) (*port.FaceDetection, error) {
	boxes, err := f.locator.LocateFaces(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("locate faces: %w", err)
	}

	out := &port.FaceDetection{Faces: make([]port.FaceScores, 0, len(boxes))}
	for _, box := range boxes {
		crop := img.Crop(box)
		if crop.Bounds().Empty() {
			continue
		}
		scores, err := f.classifier.ClassifyCrop(ctx, crop)
		if err != nil {
			return nil, fmt.Errorf("classify face at (%d,%d): %w", box.X, box.Y, err)
		}
		out.Faces = append(out.Faces, port.FaceScores{Box: box, Scores: scores})
	}

	if len(out.Faces) > 0 {
		out.Top, out.TopScore = argmax(out.Faces[0].Scores)
	}
	return out, nil
}

func argmax(scores map[string]float64) (string, float64) {
	var (
		best  string
		score float64
		found bool
	)
	for name, v := range scores {
		if !found || v > score || (v == score && name > best) {
			best, score, found = name, v, true
		}
	}
	return best, score
}

// Проверка реализации интерфейса
var _ port.FaceEmotionDetector = (*FER)(nil)
