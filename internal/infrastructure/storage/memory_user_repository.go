package storage

import (
	"context"
	"sync"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище диалогов бота.
// Наружу отдаются копии, общий *entity.User не меняется в обход Update.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]entity.User),
	}
}

// Get возвращает копию пользователя, новый создаётся в главном меню с движком по умолчанию
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()
	if exists {
		return &user, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user = r.loadLocked(userID, chatID)
	return &user, nil
}

// Save сохраняет состояние и выбранный движок пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	r.users[user.ID] = *user
	r.mu.Unlock()

	return nil
}

// Update применяет fn под блокировкой и сохраняет результат
func (r *MemoryUserRepository) Update(ctx context.Context, userID, chatID int64, fn func(*entity.User) error) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.loadLocked(userID, chatID)
	if err := fn(&user); err != nil {
		return nil, err
	}
	r.users[userID] = user
	return &user, nil
}

func (r *MemoryUserRepository) loadLocked(userID, chatID int64) entity.User {
	if user, exists := r.users[userID]; exists {
		return user
	}
	user := *entity.NewUser(userID, chatID)
	r.users[userID] = user
	return user
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
