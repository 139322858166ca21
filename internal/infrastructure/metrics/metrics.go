package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

const namespace = "sentiment"

// Metrics счётчики классификаций и статус движков
type Metrics struct {
	classifications *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	engineUp        *prometheus.GaugeVec
}

// New создаёт метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classification calls by engine and outcome.",
		}, []string{"engine", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Engine call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
		engineUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "engine_available",
			Help:      "1 if the engine initialized at startup.",
		}, []string{"engine"}),
	}
	reg.MustRegister(m.classifications, m.duration, m.engineUp)
	return m
}

// ObserveClassification учитывает вызов движка
func (m *Metrics) ObserveClassification(engine entity.EngineID, duration time.Duration, err error) {
	m.classifications.WithLabelValues(engine.String(), outcome(err)).Inc()
	m.duration.WithLabelValues(engine.String()).Observe(duration.Seconds())
}

// SetEngineAvailable фиксирует результат инициализации движка
func (m *Metrics) SetEngineAvailable(engine entity.EngineID, available bool) {
	v := 0.0
	if available {
		v = 1
	}
	m.engineUp.WithLabelValues(engine.String()).Set(v)
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	switch entity.ErrorKind(err) {
	case entity.ErrInvalidInput:
		return "invalid_input"
	case entity.ErrUpstreamFailure:
		return "upstream_failure"
	default:
		return "error"
	}
}

// Проверка реализации интерфейса
var _ port.ClassificationObserver = (*Metrics)(nil)
