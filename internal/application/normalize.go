package app

import (
	"fmt"
	"math"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

const (
	vaderThreshold      = 0.05
	flairConfidenceGate = 0.60
	emotionCompoundGate = 0.5
)

// round2 округляет до двух знаков
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// vaderLabel переводит компаундную оценку VADER в метку
func vaderLabel(compound float64) entity.Label {
	switch {
	case compound >= vaderThreshold:
		return entity.LabelPositive
	case compound <= -vaderThreshold:
		return entity.LabelNegative
	default:
		return entity.LabelNeutral
	}
}

// polarityLabel округляет полярность и переводит её в метку
func polarityLabel(polarity float64) (entity.Label, float64) {
	p := round2(polarity)
	switch {
	case p > 0:
		return entity.LabelPositive, p
	case p < 0:
		return entity.LabelNegative, p
	default:
		return entity.LabelNeutral, p
	}
}

// flairLabel применяет порог уверенности к метке Flair
func flairLabel(native string, confidence float64) (entity.Label, error) {
	if confidence < flairConfidenceGate {
		return entity.LabelNeutral, nil
	}
	label, ok := entity.ParseSentiment(native)
	if !ok || label == entity.LabelNeutral {
		return "", fmt.Errorf("%w: unexpected flair label %q", entity.ErrUpstreamFailure, native)
	}
	return label, nil
}

// emotionLabel выбирает доминирующую эмоцию text2emotion.
// Вторая эмоция добавляется, если её оценка >= 0.5 или равна первой.
func emotionLabel(dist map[string]float64) (entity.Label, entity.EmotionScore, error) {
	scores, err := normalizeScores(dist, false)
	if err != nil {
		return "", entity.EmotionScore{}, err
	}
	ranked := scores.Ranked()
	if len(ranked) == 0 {
		return "", entity.EmotionScore{}, fmt.Errorf("%w: empty emotion distribution", entity.ErrUpstreamFailure)
	}

	top := ranked[0]
	if len(ranked) > 1 {
		second := ranked[1]
		if second.Score >= emotionCompoundGate || second.Score == top.Score {
			return entity.CompoundLabel(top.Emotion, second.Emotion), top, nil
		}
	}
	return entity.Label(top.Emotion), top, nil
}

// normalizeScores приводит имена эмоций к таксономии. Неизвестное имя считается ошибкой движка.
func normalizeScores(dist map[string]float64, round bool) (entity.EmotionScores, error) {
	out := make(entity.EmotionScores, len(dist))
	for name, v := range dist {
		e, ok := entity.ParseEmotion(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown emotion %q", entity.ErrUpstreamFailure, name)
		}
		if round {
			v = round2(v)
		}
		out[e] = v
	}
	return out, nil
}

// facesResult нормализует ответ движка лиц
func facesResult(d *port.FaceDetection) (*entity.EngineResult, error) {
	if d == nil || len(d.Faces) == 0 {
		return entity.NewFacesResult(nil, entity.EmotionScore{}), nil
	}

	subjects := make([]entity.DetectedSubject, 0, len(d.Faces))
	for _, f := range d.Faces {
		scores, err := normalizeScores(f.Scores, true)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, entity.DetectedSubject{Box: f.Box, Emotions: scores})
	}

	top, ok := entity.ParseEmotion(d.Top)
	if !ok {
		return nil, fmt.Errorf("%w: unknown top emotion %q", entity.ErrUpstreamFailure, d.Top)
	}
	return entity.NewFacesResult(subjects, entity.EmotionScore{Emotion: top, Score: round2(d.TopScore)}), nil
}
