package entity

import "sort"

// Box прямоугольная область на изображении
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center возвращает центр области
func (b Box) Center() (int, int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Area возвращает площадь области
func (b Box) Area() int {
	return b.Width * b.Height
}

// EmotionScores распределение оценок по эмоциям, значения в [0,1], сумма не обязана быть 1
type EmotionScores map[Emotion]float64

// EmotionScore пара эмоция-оценка
type EmotionScore struct {
	Emotion Emotion `json:"emotion"`
	Score   float64 `json:"score"`
}

// Ranked возвращает оценки по убыванию (score, emotion)
func (s EmotionScores) Ranked() []EmotionScore {
	out := make([]EmotionScore, 0, len(s))
	for e, v := range s {
		out = append(out, EmotionScore{Emotion: e, Score: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Emotion > out[j].Emotion
	})
	return out
}

// Top возвращает эмоцию с максимальной оценкой; для пустого распределения: (neutral, 0)
func (s EmotionScores) Top() EmotionScore {
	ranked := s.Ranked()
	if len(ranked) == 0 {
		return EmotionScore{Emotion: EmotionNeutral}
	}
	return ranked[0]
}

// DetectedSubject лицо, найденное на изображении
type DetectedSubject struct {
	Box      Box           `json:"box"`
	Emotions EmotionScores `json:"emotions"`
}
