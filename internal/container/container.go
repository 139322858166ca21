package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sentiment-bot/config"
	app "sentiment-bot/internal/application"
	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
	"sentiment-bot/internal/infrastructure/emotion"
	"sentiment-bot/internal/infrastructure/events"
	"sentiment-bot/internal/infrastructure/imaging"
	"sentiment-bot/internal/infrastructure/logger"
	"sentiment-bot/internal/infrastructure/metrics"
	"sentiment-bot/internal/infrastructure/omdb"
	"sentiment-bot/internal/infrastructure/sentiment"
	"sentiment-bot/internal/infrastructure/storage"
	"sentiment-bot/internal/infrastructure/vision"
)

// errDisabled причина недоступности движка, выключенного в engines.enabled
var errDisabled = errors.New("disabled by configuration")

// Container собранные сервисы приложения
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler

	Classifier *app.Classifier
	Users      *app.UserService
	Movies     *app.MovieService
	Images     *app.ImageService

	closers []func() error
}

// New собирает сервисы по конфигурации. Движки, которые не удалось
// инициализировать, остаются недоступными и не мешают остальным.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Container{
		Config:         cfg,
		Logger:         log,
		Metrics:        metrics.New(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}

	opts := []app.ClassifierOption{
		app.WithLogger(log.Named("classifier")),
		app.WithObserver(c.Metrics),
	}
	opts = append(opts, c.textEngines(ctx)...)

	detector, annotator, ferErr := c.faceEngine()
	opts = append(opts, app.WithFER(detector, ferErr))

	if publisher := c.publisher(); publisher != nil {
		opts = append(opts, app.WithPublisher(publisher))
	}

	c.Classifier = app.NewClassifier(opts...)
	for _, st := range c.Classifier.Status() {
		c.Metrics.SetEngineAvailable(st.Engine, st.Available)
		if st.Available {
			log.Info("engine ready", zap.String("engine", st.Engine.String()))
		} else {
			log.Warn("engine unavailable", zap.String("engine", st.Engine.String()), zap.String("reason", st.Reason))
		}
	}

	c.Users = app.NewUserService(storage.NewMemoryUserRepository())

	var source port.ReviewSource
	if cfg.OMDB.APIKey != "" {
		source = omdb.NewClient(cfg.OMDB.BaseURL, cfg.OMDB.APIKey, cfg.OMDB.Timeout, log.Named("omdb"))
	} else {
		log.Warn("omdb api key is not set, movie analysis is disabled")
	}
	c.Movies = app.NewMovieService(c.Classifier, source, storage.NewQueryCache(cfg.Cache.Capacity), log.Named("movies"))

	c.Images = app.NewImageService(c.Classifier, imaging.NewDecoder(cfg.FER.MaxPixels), annotator, c.imageStore(ctx), log.Named("images"))

	return c, nil
}

// textEngines подключает VADER в процессе и движки сервиса моделей
func (c *Container) textEngines(ctx context.Context) []app.ClassifierOption {
	engines := c.Config.Engines

	var vader port.CompoundScorer
	vaderErr := c.enabled(entity.EngineVader)
	if vaderErr == nil {
		vader = sentiment.NewVader()
	}

	models := sentiment.NewModelService(engines.ModelsURL, engines.Timeout)
	probe := func(id entity.EngineID) error {
		if err := c.enabled(id); err != nil {
			return err
		}
		return models.Probe(ctx, id)
	}

	return []app.ClassifierOption{
		app.WithVader(vader, vaderErr),
		app.WithTextBlob(models, probe(entity.EngineTextBlob)),
		app.WithFlair(models, probe(entity.EngineFlair)),
		app.WithText2Emotion(models, probe(entity.EngineText2Emotion)),
	}
}

// faceEngine собирает FER из каскада лиц (gocv) и ONNX-модели эмоций
func (c *Container) faceEngine() (port.FaceEmotionDetector, port.ImageAnnotator, error) {
	if err := c.enabled(entity.EngineFER); err != nil {
		return nil, nil, err
	}
	cfg := c.Config.FER

	faces, err := vision.NewFaceDetector(cfg.CascadePath, cfg.MinFaceSize)
	if err != nil {
		return nil, nil, err
	}

	model, err := emotion.NewONNXClassifier(cfg.ModelPath, cfg.MetadataPath)
	if err != nil {
		_ = faces.Close()
		return nil, nil, err
	}

	c.closers = append(c.closers, faces.Close, model.Close)
	return emotion.NewFER(faces, model), faces, nil
}

// publisher подключает MQTT, если задан хост брокера
func (c *Container) publisher() port.ResultPublisher {
	cfg := c.Config.MQTT
	if cfg.Host == "" {
		return nil
	}

	client, err := events.NewMQTTClient(cfg)
	if err != nil {
		c.Logger.Warn("mqtt is unavailable, results will not be published", zap.Error(err))
		return nil
	}

	c.closers = append(c.closers, func() error {
		client.Close()
		return nil
	})
	return events.NewResultPublisher(client, cfg.BaseTopic, c.Logger.Named("events"))
}

// imageStore подключает MinIO, если задан endpoint
func (c *Container) imageStore(ctx context.Context) port.ImageStore {
	cfg := c.Config.Minio
	if cfg.Endpoint == "" {
		return nil
	}

	store, err := storage.NewMinioStore(ctx, cfg, c.Logger.Named("minio"))
	if err != nil {
		c.Logger.Warn("minio is unavailable, annotated images will not be stored", zap.Error(err))
		return nil
	}
	return store
}

func (c *Container) enabled(id entity.EngineID) error {
	if !c.Config.Engines.IsEnabled(id.String()) {
		return errDisabled
	}
	return nil
}

// Close освобождает модели и соединения
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	_ = c.Logger.Sync()
	return errors.Join(errs...)
}
