//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// FaceDetector заглушка детектора лиц (без OpenCV)
type FaceDetector struct {
	MinFaceSize  int
	ScaleFactor  float64
	MinNeighbors int
}

// NewFaceDetector возвращает ошибку, если сборка без тега gocv.
func NewFaceDetector(cascadePath string, minFaceSize int) (*FaceDetector, error) {
	_ = cascadePath
	_ = minFaceSize
	return nil, ErrNotEnabled
}

// LocateFaces возвращает ошибку, если сборка без тега gocv.
func (d *FaceDetector) LocateFaces(ctx context.Context, img *entity.Image) ([]entity.Box, error) {
	_ = ctx
	_ = img
	return nil, ErrNotEnabled
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (d *FaceDetector) Annotate(ctx context.Context, imageData []byte, subjects []entity.DetectedSubject) ([]byte, error) {
	_ = ctx
	_ = imageData
	_ = subjects
	return nil, ErrNotEnabled
}

// Close ничего не делает.
func (d *FaceDetector) Close() error {
	return nil
}

var _ port.ImageAnnotator = (*FaceDetector)(nil)
