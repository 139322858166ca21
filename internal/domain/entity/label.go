package entity

import (
	"strings"
)

// Label нормализованная метка результата.
// Для текстовых движков это Positive/Negative/Neutral, для text2emotion эмоция
// или составная метка вида "happy - sad".
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Emotion эмоция из фиксированной таксономии
type Emotion string

const (
	EmotionHappy    Emotion = "happy"
	EmotionNeutral  Emotion = "neutral"
	EmotionSad      Emotion = "sad"
	EmotionDisgust  Emotion = "disgust"
	EmotionSurprise Emotion = "surprise"
	EmotionFear     Emotion = "fear"
	EmotionAngry    Emotion = "angry"
)

// CompoundSeparator разделитель составной метки
const CompoundSeparator = " - "

// Emotions возвращает таксономию эмоций в порядке отображения
func Emotions() []Emotion {
	return []Emotion{
		EmotionAngry, EmotionDisgust, EmotionFear, EmotionHappy,
		EmotionSad, EmotionSurprise, EmotionNeutral,
	}
}

// ParseEmotion приводит имя эмоции движка к таксономии (без учёта регистра)
func ParseEmotion(name string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Emotions() {
		if e == known {
			return e, true
		}
	}
	return "", false
}

// ParseSentiment приводит метку движка (POSITIVE, positive, ...) к Positive/Negative/Neutral
func ParseSentiment(name string) (Label, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "positive":
		return LabelPositive, true
	case "negative":
		return LabelNegative, true
	case "neutral":
		return LabelNeutral, true
	}
	return "", false
}

// CompoundLabel собирает составную метку из двух эмоций
func CompoundLabel(first, second Emotion) Label {
	return Label(string(first) + CompoundSeparator + string(second))
}

// Parts разбивает метку на составляющие
func (l Label) Parts() []string {
	parts := strings.Split(string(l), "-")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsCompound сообщает, составная ли метка
func (l Label) IsCompound() bool {
	return strings.Contains(string(l), CompoundSeparator)
}

var emoji = map[string]string{
	"happy":    "😊",
	"neutral":  "😐",
	"sad":      "😢",
	"disgust":  "🤢",
	"surprise": "😲",
	"fear":     "😨",
	"angry":    "😠",
	"positive": "😊",
	"negative": "😞",
}

// Emoji возвращает эмодзи для метки; для составной метки по одному на часть
func (l Label) Emoji() string {
	var b strings.Builder
	for _, p := range l.Parts() {
		b.WriteString(emoji[strings.ToLower(p)])
	}
	return b.String()
}

// Emoji возвращает эмодзи эмоции
func (e Emotion) Emoji() string {
	return emoji[string(e)]
}
