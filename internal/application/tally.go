package app

import (
	"context"
	"sort"

	"sentiment-bot/internal/domain/entity"
)

// LabelCount сколько раз встретилась метка и её доля
type LabelCount struct {
	Label entity.Label `json:"label"`
	Count int          `json:"count"`
	Share float64      `json:"share"`
}

// Tally подсчёт меток по набору текстов.
// Метки сравниваются как строки: "happy - sad" и "sad - happy" считаются разными.
type Tally struct {
	Engine entity.EngineID      `json:"engine"`
	Total  int                  `json:"total"`
	Counts map[entity.Label]int `json:"-"`
}

// Sorted возвращает метки по убыванию количества, при равенстве по алфавиту
func (t *Tally) Sorted() []LabelCount {
	out := make([]LabelCount, 0, len(t.Counts))
	for label, n := range t.Counts {
		lc := LabelCount{Label: label, Count: n}
		if t.Total > 0 {
			lc.Share = float64(n) / float64(t.Total)
		}
		out = append(out, lc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Tally классифицирует каждый текст отдельно и считает метки.
// Первая ошибка прерывает подсчёт.
func (c *Classifier) Tally(ctx context.Context, id entity.EngineID, texts []string) (*Tally, error) {
	t := &Tally{Engine: id, Counts: make(map[entity.Label]int)}
	for _, text := range texts {
		result, err := c.ClassifyText(ctx, id, text)
		if err != nil {
			return nil, err
		}
		t.Counts[result.DisplayLabel()]++
		t.Total++
	}
	return t, nil
}
