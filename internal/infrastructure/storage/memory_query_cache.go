package storage

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// QueryCache in-memory LRU кэш результатов поиска фильмов.
// При ёмкости 1 новый запрос вытесняет предыдущий.
type QueryCache struct {
	cache *lru.Cache[string, []entity.Movie]
}

// NewQueryCache создаёт кэш заданной ёмкости (не меньше 1)
func NewQueryCache(capacity int) *QueryCache {
	if capacity < 1 {
		capacity = 1
	}
	// lru.New возвращает ошибку только для неположительного размера
	c, _ := lru.New[string, []entity.Movie](capacity)
	return &QueryCache{cache: c}
}

// Get возвращает закэшированный результат
func (c *QueryCache) Get(query string) ([]entity.Movie, bool) {
	return c.cache.Get(query)
}

// Put сохраняет результат, вытесняя самый старый при переполнении
func (c *QueryCache) Put(query string, movies []entity.Movie) {
	c.cache.Add(query, movies)
}

// Len возвращает число записей
func (c *QueryCache) Len() int {
	return c.cache.Len()
}

// Проверка реализации интерфейса
var _ port.QueryCache = (*QueryCache)(nil)
