package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// MovieAnalysis результат анализа отзывов одного фильма
type MovieAnalysis struct {
	Movie     entity.Movie `json:"movie"`
	NoReviews bool         `json:"no_reviews"`
	Tally     *Tally       `json:"-"`
	Labels    []LabelCount `json:"labels,omitempty"`
}

// MovieReport результат поиска и анализа
type MovieReport struct {
	Query  string          `json:"query"`
	Engine entity.EngineID `json:"engine"`
	Cached bool            `json:"cached"`
	Movies []MovieAnalysis `json:"movies"`
}

// MovieService ищет фильмы и считает тональность их отзывов
type MovieService struct {
	classifier *Classifier
	source     port.ReviewSource
	cache      port.QueryCache
	logger     *zap.Logger
}

// NewMovieService создаёт сервис анализа фильмов. cache может быть nil.
func NewMovieService(classifier *Classifier, source port.ReviewSource, cache port.QueryCache, logger *zap.Logger) *MovieService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovieService{classifier: classifier, source: source, cache: cache, logger: logger}
}

// Analyze ищет фильмы по запросу и анализирует их отзывы выбранным движком
func (s *MovieService) Analyze(ctx context.Context, query string, engine entity.EngineID) (*MovieReport, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty movie query", entity.ErrInvalidInput)
	}
	if !engine.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedEngine, engine)
	}
	if !s.classifier.IsAvailable(engine) {
		return nil, fmt.Errorf("%w: %s", entity.ErrEngineUnavailable, engine)
	}
	if engine.Modality() != entity.ModalityText {
		return nil, fmt.Errorf("%w: engine %s does not accept text", entity.ErrInvalidInput, engine)
	}
	if s.source == nil {
		return nil, fmt.Errorf("%w: review source is not configured", entity.ErrUpstreamFailure)
	}

	movies, cached, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	report := &MovieReport{Query: query, Engine: engine, Cached: cached, Movies: make([]MovieAnalysis, 0, len(movies))}
	for _, m := range movies {
		a := MovieAnalysis{Movie: m}
		if !m.HasReviews() {
			a.NoReviews = true
			report.Movies = append(report.Movies, a)
			continue
		}
		tally, err := s.classifier.Tally(ctx, engine, m.Reviews)
		if err != nil {
			return nil, fmt.Errorf("analyze %q: %w", m.Title, err)
		}
		a.Tally = tally
		a.Labels = tally.Sorted()
		report.Movies = append(report.Movies, a)
	}

	s.logger.Info("movie reviews analyzed",
		zap.String("query", query),
		zap.String("engine", engine.String()),
		zap.Int("movies", len(report.Movies)),
		zap.Bool("cached", cached),
	)
	return report, nil
}

func (s *MovieService) search(ctx context.Context, query string) ([]entity.Movie, bool, error) {
	if s.cache != nil {
		if movies, ok := s.cache.Get(query); ok {
			return movies, true, nil
		}
	}

	movies, err := s.source.Search(ctx, query)
	if err != nil {
		if entity.ErrorKind(err) == nil {
			err = fmt.Errorf("%w: search movies: %w", entity.ErrUpstreamFailure, err)
		}
		return nil, false, err
	}

	if s.cache != nil {
		s.cache.Put(query, movies)
	}
	return movies, false, nil
}
