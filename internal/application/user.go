package app

import (
	"context"
	"errors"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// ErrUserBusy пользователь уже ждёт результат предыдущего запроса
var ErrUserBusy = errors.New("user is busy")

// UserService хранит режим диалога и выбранный движок пользователя бота
type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// SetState переводит пользователя в новое состояние
func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) error {
		u.SetState(state)
		return nil
	})
}

// SelectEngine меняет текстовый движок; движок для фото отклоняется с ErrInvalidInput
func (s *UserService) SelectEngine(ctx context.Context, userID, chatID int64, engine entity.EngineID) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) error {
		return u.SetEngine(engine)
	})
}

func (s *UserService) BeginText(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingText)
}

func (s *UserService) BeginMovie(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingMovie)
}

func (s *UserService) BeginImage(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// Cancel возвращает пользователя в главное меню, выбранный движок сохраняется
func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// Acquire атомарно переводит пользователя в StateProcessing.
// Если запрос уже обрабатывается, возвращает ErrUserBusy и ничего не меняет.
func (s *UserService) Acquire(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) error {
		if u.Busy() {
			return ErrUserBusy
		}
		u.SetState(entity.StateProcessing)
		return nil
	})
}

// Release завершает обработку и переводит пользователя в state.
// Состояние, выставленное командой во время обработки (например /cancel), сохраняется.
func (s *UserService) Release(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	return s.repo.Update(ctx, userID, chatID, func(u *entity.User) error {
		if u.Busy() {
			u.SetState(state)
		}
		return nil
	})
}
