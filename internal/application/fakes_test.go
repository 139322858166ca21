package app

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

type compoundFunc func(text string) (float64, error)

func (f compoundFunc) Compound(_ context.Context, text string) (float64, error) { return f(text) }

type polarityFunc func(text string) (float64, error)

func (f polarityFunc) Polarity(_ context.Context, text string) (float64, error) { return f(text) }

type predictFunc func(text string) (string, float64, error)

func (f predictFunc) Predict(_ context.Context, text string) (string, float64, error) { return f(text) }

type emotionsFunc func(text string) (map[string]float64, error)

func (f emotionsFunc) Emotions(_ context.Context, text string) (map[string]float64, error) {
	return f(text)
}

type detectFunc func(img *entity.Image) (*port.FaceDetection, error)

func (f detectFunc) DetectEmotions(_ context.Context, img *entity.Image) (*port.FaceDetection, error) {
	return f(img)
}

// MockReviewSource is a mock implementation of ReviewSource
type MockReviewSource struct {
	mock.Mock
}

func (m *MockReviewSource) Search(ctx context.Context, query string) ([]entity.Movie, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Movie), args.Error(1)
}

// MockPublisher is a mock implementation of ResultPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event entity.ClassificationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

type observation struct {
	engine entity.EngineID
	err    error
}

type recordingObserver struct {
	calls []observation
}

func (o *recordingObserver) ObserveClassification(engine entity.EngineID, _ time.Duration, err error) {
	o.calls = append(o.calls, observation{engine: engine, err: err})
}

func rgbImage(w, h int) *entity.Image {
	return &entity.Image{Width: w, Height: h, Channels: 3, Pix: make([]uint8, w*h*3)}
}
