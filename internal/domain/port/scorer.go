package port

import "context"

// CompoundScorer движок с компаундной оценкой в [-1, 1] (VADER)
type CompoundScorer interface {
	Compound(ctx context.Context, text string) (float64, error)
}

// PolarityScorer движок с полярностью в [-1, 1] (TextBlob)
type PolarityScorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// LabelPredictor движок, возвращающий метку и уверенность (Flair)
type LabelPredictor interface {
	Predict(ctx context.Context, text string) (label string, confidence float64, err error)
}

// EmotionScorer движок с распределением по эмоциям (text2emotion)
type EmotionScorer interface {
	Emotions(ctx context.Context, text string) (map[string]float64, error)
}
