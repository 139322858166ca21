package telegram

import (
	"fmt"
	"strings"

	app "sentiment-bot/internal/application"
	"sentiment-bot/internal/domain/entity"
)

// formatLabel выводит метку с эмодзи
func formatLabel(label entity.Label) string {
	if e := label.Emoji(); e != "" {
		return e + " " + string(label)
	}
	return string(label)
}

// formatTextResult описывает результат классификации текста
func formatTextResult(result *entity.EngineResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Движок: %s\n", result.Engine)
	fmt.Fprintf(&b, "Результат: %s", formatLabel(result.DisplayLabel()))
	if result.Score != nil {
		fmt.Fprintf(&b, "\nОценка: %.2f", *result.Score)
	}
	if result.Confidence != nil {
		fmt.Fprintf(&b, "\nУверенность: %.2f", *result.Confidence)
	}
	return b.String()
}

// formatTally выводит распределение меток с долями
func formatTally(counts []app.LabelCount) string {
	lines := make([]string, 0, len(counts))
	for _, lc := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d (%.0f%%)", formatLabel(lc.Label), lc.Count, lc.Share*100))
	}
	return strings.Join(lines, "\n")
}

// formatMovieReport описывает анализ отзывов по найденным фильмам
func formatMovieReport(report *app.MovieReport) string {
	if len(report.Movies) == 0 {
		return msgNoMovies
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎬 «%s», движок %s", report.Query, report.Engine)
	for _, m := range report.Movies {
		fmt.Fprintf(&b, "\n\n%s (%s)\n", m.Movie.Title, m.Movie.Description)
		if m.NoReviews {
			b.WriteString(msgNoReviews)
			continue
		}
		b.WriteString(formatTally(m.Labels))
	}
	return b.String()
}

// formatImageResult описывает эмоции на найденных лицах
func formatImageResult(analysis *app.ImageAnalysis) string {
	result := analysis.Result
	if len(result.Subjects) == 0 {
		return msgNoFaces
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 Найдено лиц: %d\n", len(result.Subjects))
	if result.Top != nil {
		fmt.Fprintf(&b, "Главная эмоция: %s %s (%.2f)", result.Top.Emotion.Emoji(), result.Top.Emotion, result.Top.Score)
	}
	for i, s := range result.Subjects {
		top := s.Emotions.Top()
		fmt.Fprintf(&b, "\nЛицо %d: %s %s %.2f", i+1, top.Emotion.Emoji(), top.Emotion, top.Score)
	}
	return b.String()
}

// formatEngines выводит список движков и отмечает выбранный
func formatEngines(status []app.EngineStatus, current entity.EngineID) string {
	var b strings.Builder
	b.WriteString("⚙️ Движки:")
	for _, st := range status {
		mark := "✅"
		if !st.Available {
			mark = "🚫"
		}
		fmt.Fprintf(&b, "\n%s %s (%s)", mark, st.Engine, st.Modality)
		if st.Engine == current {
			b.WriteString(" ← выбран")
		}
		if !st.Available && st.Reason != "" {
			fmt.Fprintf(&b, ": %s", st.Reason)
		}
	}
	b.WriteString("\n\nСменить текстовый движок: /engine <имя>")
	return b.String()
}

// formatError переводит ошибку классификации в сообщение пользователю
func formatError(err error) string {
	switch entity.ErrorKind(err) {
	case entity.ErrUnsupportedEngine:
		return msgUnknownEngine
	case entity.ErrEngineUnavailable:
		return msgEngineUnavailable
	case entity.ErrInvalidInput:
		return msgInvalidInput
	case entity.ErrUpstreamFailure:
		return msgUpstreamFailure
	default:
		return msgProcessingError
	}
}
