package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingText  UserState = "awaiting_text"  // Ожидание текста для анализа
	StateAwaitingMovie UserState = "awaiting_movie" // Ожидание названия фильма
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото с лицами
	StateProcessing    UserState = "processing"     // Обработка запроса
)

// DefaultTextEngine движок, выбранный у нового пользователя
const DefaultTextEngine = EngineVader

// User представляет пользователя бота
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState // Текущее состояние пользователя
	Engine EngineID  // Выбранный текстовый движок
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
		Engine: DefaultTextEngine,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetEngine меняет текстовый движок пользователя
func (u *User) SetEngine(engine EngineID) error {
	if !engine.Valid() {
		return ErrUnsupportedEngine
	}
	if engine.Modality() != ModalityText {
		return ErrInvalidInput
	}
	u.Engine = engine
	return nil
}

// Busy сообщает, обрабатывается ли сейчас запрос пользователя
func (u *User) Busy() bool {
	return u.State == StateProcessing
}
