package port

import (
	"context"
	"time"

	"sentiment-bot/internal/domain/entity"
)

// ImageStore хранилище размеченных изображений
type ImageStore interface {
	// Save сохраняет объект и возвращает его URL
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ResultPublisher публикует события классификации во внешнюю шину
type ResultPublisher interface {
	Publish(ctx context.Context, event entity.ClassificationEvent) error
}

// ClassificationObserver получает сведения о каждом вызове движка
type ClassificationObserver interface {
	ObserveClassification(engine entity.EngineID, duration time.Duration, err error)
}
