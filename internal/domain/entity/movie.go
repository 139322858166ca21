package entity

// Movie фильм из источника отзывов
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster"`
	Description string   `json:"description"`
	Reviews     []string `json:"reviews"`
}

// HasReviews сообщает, есть ли отзывы для анализа
func (m Movie) HasReviews() bool {
	return len(m.Reviews) > 0
}
