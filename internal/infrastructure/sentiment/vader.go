package sentiment

import (
	"context"
	"sync"

	"github.com/jonreiter/govader"

	"sentiment-bot/internal/domain/port"
)

// Vader in-process анализатор VADER
type Vader struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader загружает лексикон VADER
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound возвращает компаундную оценку текста в [-1, 1]
func (v *Vader) Compound(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	v.mu.Lock()
	scores := v.analyzer.PolarityScores(text)
	v.mu.Unlock()

	return scores.Compound, nil
}

// Проверка реализации интерфейса
var _ port.CompoundScorer = (*Vader)(nil)
