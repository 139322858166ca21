//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"sync"

	"gocv.io/x/gocv"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// FaceDetector ищет лица каскадом Хаара и рисует их рамки
type FaceDetector struct {
	mu           sync.Mutex
	cascade      gocv.CascadeClassifier
	MinFaceSize  int
	ScaleFactor  float64
	MinNeighbors int
}

// NewFaceDetector загружает каскад лиц из файла
func NewFaceDetector(cascadePath string, minFaceSize int) (*FaceDetector, error) {
	cascade := gocv.NewCascadeClassifier()
	if !cascade.Load(cascadePath) {
		cascade.Close()
		return nil, fmt.Errorf("failed to load face cascade %s", cascadePath)
	}
	return &FaceDetector{
		cascade:      cascade,
		MinFaceSize:  minFaceSize,
		ScaleFactor:  1.1,
		MinNeighbors: 5,
	}, nil
}

// LocateFaces возвращает рамки найденных лиц
func (d *FaceDetector) LocateFaces(ctx context.Context, img *entity.Image) ([]entity.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := gocv.ImageToMatRGB(img.ToRGBA())
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	gocv.EqualizeHist(gray, &gray)

	minSize := image.Pt(d.MinFaceSize, d.MinFaceSize)

	// CascadeClassifier хранит нативное состояние и не потокобезопасен
	d.mu.Lock()
	rects := d.cascade.DetectMultiScaleWithParams(gray, d.ScaleFactor, d.MinNeighbors, 0, minSize, image.Pt(0, 0))
	d.mu.Unlock()

	boxes := make([]entity.Box, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, entity.Box{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()})
	}
	return boxes, nil
}

// Annotate рисует рамки вокруг лиц с верхней эмоцией и возвращает JPEG
func (d *FaceDetector) Annotate(ctx context.Context, imageData []byte, subjects []entity.DetectedSubject) ([]byte, error) {
	_ = ctx
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	green := color.RGBA{G: 255, A: 255}
	for _, s := range subjects {
		rect := image.Rect(s.Box.X, s.Box.Y, s.Box.X+s.Box.Width, s.Box.Y+s.Box.Height)
		gocv.Rectangle(&mat, rect, green, 2)

		top := s.Emotions.Top()
		label := fmt.Sprintf("%s %.2f", top.Emotion, top.Score)
		org := image.Pt(s.Box.X, maxInt(s.Box.Y-8, 12))
		gocv.PutText(&mat, label, org, gocv.FontHersheySimplex, 0.5, green, 1)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Close освобождает каскад
func (d *FaceDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cascade.Close()
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Проверка реализации интерфейса
var _ port.ImageAnnotator = (*FaceDetector)(nil)
