package port

import (
	"context"

	"sentiment-bot/internal/domain/entity"
)

// ReviewSource источник фильмов с отзывами
type ReviewSource interface {
	// Search ищет фильмы по запросу и возвращает их вместе с отзывами
	Search(ctx context.Context, query string) ([]entity.Movie, error)
}

// QueryCache ограниченный по ёмкости кэш результатов поиска
type QueryCache interface {
	Get(query string) ([]entity.Movie, bool)
	Put(query string, movies []entity.Movie)
}
