package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

var errNotConfigured = errors.New("not configured")

// EngineStatus результат инициализации движка
type EngineStatus struct {
	Engine    entity.EngineID `json:"engine"`
	Modality  entity.Modality `json:"modality"`
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
}

type runFunc func(ctx context.Context, req entity.PredictionRequest) (*entity.EngineResult, error)

type engineHandle struct {
	run     runFunc
	initErr error
}

// Classifier единая точка классификации поверх всех движков.
// Доступность движков фиксируется при создании и больше не перепроверяется.
type Classifier struct {
	engines   map[entity.EngineID]*engineHandle
	observer  port.ClassificationObserver
	publisher port.ResultPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// ClassifierOption настраивает Classifier
type ClassifierOption func(*Classifier)

// NewClassifier создаёт классификатор. Движки, не переданные опциями, недоступны.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		engines: make(map[entity.EngineID]*engineHandle),
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Classifier) register(id entity.EngineID, ready bool, initErr error, run runFunc) {
	if initErr == nil && !ready {
		initErr = errNotConfigured
	}
	if initErr != nil {
		c.engines[id] = &engineHandle{initErr: initErr}
		return
	}
	c.engines[id] = &engineHandle{run: run}
}

// WithVader подключает VADER. initErr != nil помечает движок недоступным.
func WithVader(scorer port.CompoundScorer, initErr error) ClassifierOption {
	return func(c *Classifier) {
		c.register(entity.EngineVader, scorer != nil, initErr, func(ctx context.Context, req entity.PredictionRequest) (*entity.EngineResult, error) {
			compound, err := scorer.Compound(ctx, req.Text())
			if err != nil {
				return nil, err
			}
			return entity.NewLabelResult(entity.EngineVader, vaderLabel(compound)).WithScore(compound), nil
		})
	}
}

// WithTextBlob подключает TextBlob
func WithTextBlob(scorer port.PolarityScorer, initErr error) ClassifierOption {
	return func(c *Classifier) {
		c.register(entity.EngineTextBlob, scorer != nil, initErr, func(ctx context.Context, req entity.PredictionRequest) (*entity.EngineResult, error) {
			polarity, err := scorer.Polarity(ctx, req.Text())
			if err != nil {
				return nil, err
			}
			label, rounded := polarityLabel(polarity)
			return entity.NewLabelResult(entity.EngineTextBlob, label).WithScore(rounded), nil
		})
	}
}

// WithFlair подключает Flair
func WithFlair(predictor port.LabelPredictor, initErr error) ClassifierOption {
	return func(c *Classifier) {
		c.register(entity.EngineFlair, predictor != nil, initErr, func(ctx context.Context, req entity.PredictionRequest) (*entity.EngineResult, error) {
			native, confidence, err := predictor.Predict(ctx, req.Text())
			if err != nil {
				return nil, err
			}
			label, err := flairLabel(native, confidence)
			if err != nil {
				return nil, err
			}
			return entity.NewLabelResult(entity.EngineFlair, label).WithConfidence(confidence), nil
		})
	}
}

// WithText2Emotion подключает text2emotion
func WithText2Emotion(scorer port.EmotionScorer, initErr error) ClassifierOption {
	return func(c *Classifier) {
		c.register(entity.EngineText2Emotion, scorer != nil, initErr, func(ctx context.Context, req entity.PredictionRequest) (*entity.EngineResult, error) {
			dist, err := scorer.Emotions(ctx, req.Text())
			if err != nil {
				return nil, err
			}
			label, top, err := emotionLabel(dist)
			if err != nil {
				return nil, err
			}
			return entity.NewLabelResult(entity.EngineText2Emotion, label).WithScore(top.Score), nil
		})
	}
}

// WithFER подключает детектор эмоций на лицах
func WithFER(detector port.FaceEmotionDetector, initErr error) ClassifierOption {
	return func(c *Classifier) {
		c.register(entity.EngineFER, detector != nil, initErr, func(ctx context.Context, req entity.PredictionRequest) (*entity.EngineResult, error) {
			detection, err := detector.DetectEmotions(ctx, req.Image())
			if err != nil {
				return nil, err
			}
			return facesResult(detection)
		})
	}
}

// WithObserver подключает наблюдателя вызовов (метрики)
func WithObserver(observer port.ClassificationObserver) ClassifierOption {
	return func(c *Classifier) {
		c.observer = observer
	}
}

// WithPublisher подключает публикацию событий классификации
func WithPublisher(publisher port.ResultPublisher) ClassifierOption {
	return func(c *Classifier) {
		c.publisher = publisher
	}
}

// WithLogger задаёт логгер
func WithLogger(logger *zap.Logger) ClassifierOption {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Classify классифицирует запрос выбранным движком.
// Порядок проверок: неизвестный движок, недоступный движок, неверный вход, ошибка движка.
func (c *Classifier) Classify(ctx context.Context, id entity.EngineID, req entity.PredictionRequest) (*entity.EngineResult, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedEngine, id)
	}

	h, ok := c.engines[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrEngineUnavailable, id, errNotConfigured)
	}
	if h.initErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrEngineUnavailable, id, h.initErr)
	}

	if err := checkInput(id, req); err != nil {
		return nil, err
	}

	start := c.now()
	result, err := h.run(ctx, req)
	duration := c.now().Sub(start)
	if err != nil && entity.ErrorKind(err) == nil {
		err = fmt.Errorf("%w: %s: %w", entity.ErrUpstreamFailure, id, err)
	}

	if c.observer != nil {
		c.observer.ObserveClassification(id, duration, err)
	}
	if err != nil {
		c.logger.Warn("classification failed",
			zap.String("engine", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	c.publish(ctx, id, req, result, duration)
	return result, nil
}

// ClassifyText классифицирует текст
func (c *Classifier) ClassifyText(ctx context.Context, id entity.EngineID, text string) (*entity.EngineResult, error) {
	return c.Classify(ctx, id, entity.TextRequest(text))
}

// ClassifyImage классифицирует изображение движком лиц
func (c *Classifier) ClassifyImage(ctx context.Context, img *entity.Image) (*entity.EngineResult, error) {
	return c.Classify(ctx, entity.EngineFER, entity.ImageRequest(img))
}

func checkInput(id entity.EngineID, req entity.PredictionRequest) error {
	want := id.Modality()
	if req.Modality() != want {
		return fmt.Errorf("%w: engine %s expects %s input, got %q", entity.ErrInvalidInput, id, want, req.Modality())
	}
	if want == entity.ModalityImage {
		return req.Image().Validate()
	}
	return nil
}

func (c *Classifier) publish(ctx context.Context, id entity.EngineID, req entity.PredictionRequest, result *entity.EngineResult, duration time.Duration) {
	if c.publisher == nil {
		return
	}
	event := entity.ClassificationEvent{
		ID:        uuid.New().String(),
		Engine:    id,
		Modality:  req.Modality(),
		Label:     result.DisplayLabel(),
		Faces:     len(result.Subjects),
		Duration:  duration,
		Timestamp: c.now().UTC(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish classification event",
			zap.String("engine", id.String()),
			zap.Error(err),
		)
	}
}

// Status возвращает результаты инициализации всех движков
func (c *Classifier) Status() []EngineStatus {
	out := make([]EngineStatus, 0, len(entity.AllEngines()))
	for _, id := range entity.AllEngines() {
		st := EngineStatus{Engine: id, Modality: id.Modality(), Reason: errNotConfigured.Error()}
		if h, ok := c.engines[id]; ok {
			if h.initErr != nil {
				st.Reason = h.initErr.Error()
			} else {
				st.Available, st.Reason = true, ""
			}
		}
		out = append(out, st)
	}
	return out
}

// IsAvailable сообщает, инициализирован ли движок
func (c *Classifier) IsAvailable(id entity.EngineID) bool {
	h, ok := c.engines[id]
	return ok && h.initErr == nil
}

// Available возвращает доступные движки заданного типа входа; пустой modality означает все
func (c *Classifier) Available(modality entity.Modality) []entity.EngineID {
	var out []entity.EngineID
	for _, id := range entity.AllEngines() {
		if c.IsAvailable(id) && (modality == "" || id.Modality() == modality) {
			out = append(out, id)
		}
	}
	return out
}

// Enabled сообщает, доступен ли хотя бы один движок
func (c *Classifier) Enabled() bool {
	return len(c.Available("")) > 0
}
