package port

import (
	"context"

	"sentiment-bot/internal/domain/entity"
)

// UserRepository хранилище диалогов бота
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние пользователя
	Save(ctx context.Context, user *entity.User) error

	// Update атомарно применяет fn к пользователю; ошибка fn отменяет изменения
	Update(ctx context.Context, userID, chatID int64, fn func(*entity.User) error) (*entity.User, error)
}
