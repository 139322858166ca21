package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// Publisher отправитель сообщений в брокер
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// ResultPublisher публикует события классификации в <base>/results/<engine>
type ResultPublisher struct {
	client    Publisher
	baseTopic string
	logger    *zap.Logger
}

// NewResultPublisher создаёт публикатор событий
func NewResultPublisher(client Publisher, baseTopic string, logger *zap.Logger) *ResultPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultPublisher{client: client, baseTopic: baseTopic, logger: logger}
}

// Topic возвращает топик для движка
func (p *ResultPublisher) Topic(engine entity.EngineID) string {
	return fmt.Sprintf("%s/results/%s", p.baseTopic, engine)
}

// Publish сериализует событие и отправляет его с QoS 1
func (p *ResultPublisher) Publish(ctx context.Context, event entity.ClassificationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"id":          event.ID,
		"engine":      event.Engine.String(),
		"modality":    string(event.Modality),
		"label":       string(event.Label),
		"duration_ms": event.Duration.Milliseconds(),
		"timestamp":   event.Timestamp.UTC().Format(time.RFC3339),
	}
	if event.Modality == entity.ModalityImage {
		payload["faces"] = event.Faces
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal classification event: %w", err)
	}

	topic := p.Topic(event.Engine)
	if err := p.client.Publish(topic, 1, false, b); err != nil {
		return fmt.Errorf("publish classification event to %s: %w", topic, err)
	}

	p.logger.Debug("classification event published", zap.String("topic", topic), zap.String("id", event.ID))
	return nil
}

// Проверка реализации интерфейса
var _ port.ResultPublisher = (*ResultPublisher)(nil)
