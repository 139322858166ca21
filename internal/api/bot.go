package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "sentiment-bot/internal/application"
	"sentiment-bot/internal/container"
	"sentiment-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я определяю тональность текстов и эмоции на фотографиях.

📋 Команды:
/text — анализ текста
/movie — анализ отзывов о фильме
/image — эмоции на фото
/engines — доступные движки
/engine <имя> — выбрать движок для текста
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Выберите режим: /text, /movie или /image
2️⃣ Отправьте текст, название фильма или фото
3️⃣ Получите метку тональности или эмоции

💡 Движки для текста: vader, textblob, flair, text2emotion.
Фото анализируется движком fer.

📋 Команды:
/engines — доступные движки
/engine <имя> — выбрать движок
/cancel — отменить операцию`

	msgAwaitingText      = "✍️ Отправьте текст для анализа. Движок: %s"
	msgAwaitingMovie     = "🎬 Отправьте название фильма. Движок: %s"
	msgAwaitingPhoto     = "📸 Отправьте фото с лицами."
	msgCancelled         = "❌ Операция отменена. Отправьте /help для списка команд."
	msgChooseMode        = "❓ Выберите режим: /text, /movie или /image."
	msgUnknownCommand    = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing        = "⏳ Обрабатываю..."
	msgBusy              = "⏳ Подождите, предыдущий запрос ещё обрабатывается."
	msgDisabled          = "🚫 Классификация отключена: ни один движок не доступен."
	msgEngineUsage       = "Укажите движок: /engine vader"
	msgEngineSelected    = "✅ Текстовый движок: %s"
	msgEngineNotText     = "⚠️ Этот движок работает только с фото. Для текста выберите vader, textblob, flair или text2emotion."
	msgUnknownEngine     = "⚠️ Неизвестный движок. Список: /engines"
	msgEngineUnavailable = "🚫 Движок недоступен. Список: /engines"
	msgInvalidInput      = "⚠️ Не удалось разобрать входные данные. Для фото нужен цветной JPEG или PNG."
	msgUpstreamFailure   = "⚠️ Сервис анализа не ответил. Попробуйте позже."
	msgProcessingError   = "⚠️ Не удалось обработать запрос. Попробуйте ещё раз."
	msgNoMovies          = "🎬 Фильмы по запросу не найдены."
	msgNoReviews         = "Отзывы не найдены."
	msgNoFaces           = "🙈 Лица на фото не найдены."
)

const downloadTimeout = 30 * time.Second

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	classifier *app.Classifier
	movies     *app.MovieService
	images     *app.ImageService
	httpClient *http.Client
	logger     *zap.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	c.Logger.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	return &Bot{
		api:        api,
		users:      c.Users,
		classifier: c.Classifier,
		movies:     c.Movies,
		images:     c.Images,
		httpClient: &http.Client{Timeout: downloadTimeout},
		logger:     c.Logger.Named("telegram"),
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx.
// Каждое сообщение обрабатывается в своей горутине; Run дожидается их завершения.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer wg.Done()
				b.handleMessage(ctx, msg)
			}(update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error("failed to get user", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if user.Busy() {
		b.sendMessage(msg.Chat.ID, msgBusy)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	switch user.State {
	case entity.StateAwaitingText:
		b.handleText(ctx, msg, user)
	case entity.StateAwaitingMovie:
		b.handleMovie(ctx, msg, user)
	case entity.StateAwaitingPhoto:
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)
	default:
		b.sendMessage(msg.Chat.ID, msgChooseMode)
	}
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "engines":
		b.sendMessage(chatID, formatEngines(b.classifier.Status(), user.Engine))

	case "engine":
		b.handleEngine(ctx, msg, user)

	case "text":
		if !b.requireEnabled(chatID) {
			return
		}
		b.setState(ctx, user, entity.StateAwaitingText)
		b.sendMessage(chatID, fmt.Sprintf(msgAwaitingText, user.Engine))

	case "movie":
		if !b.requireEnabled(chatID) {
			return
		}
		b.setState(ctx, user, entity.StateAwaitingMovie)
		b.sendMessage(chatID, fmt.Sprintf(msgAwaitingMovie, user.Engine))

	case "image":
		if !b.requireEnabled(chatID) {
			return
		}
		if !b.classifier.IsAvailable(entity.EngineFER) {
			b.sendMessage(chatID, msgEngineUnavailable)
			return
		}
		b.setState(ctx, user, entity.StateAwaitingPhoto)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleEngine обрабатывает /engine <имя>
func (b *Bot) handleEngine(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	name := strings.TrimSpace(msg.CommandArguments())
	if name == "" {
		b.sendMessage(chatID, msgEngineUsage)
		return
	}

	id, err := entity.ParseEngineID(name)
	if err != nil {
		b.sendMessage(chatID, msgUnknownEngine)
		return
	}
	if id.Modality() != entity.ModalityText {
		b.sendMessage(chatID, msgEngineNotText)
		return
	}
	if !b.classifier.IsAvailable(id) {
		b.sendMessage(chatID, msgEngineUnavailable)
		return
	}

	updated, err := b.users.SelectEngine(ctx, user.ID, user.ChatID, id)
	if err != nil {
		b.logger.Error("failed to select engine", zap.Int64("user_id", user.ID), zap.Error(err))
		b.sendMessage(chatID, formatError(err))
		return
	}
	*user = *updated
	b.sendMessage(chatID, fmt.Sprintf(msgEngineSelected, id))
}

// handleText классифицирует текст выбранным движком
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	if !b.requireEnabled(msg.Chat.ID) {
		return
	}

	if !b.acquire(ctx, user) {
		return
	}
	defer b.release(ctx, user, entity.StateAwaitingText)

	result, err := b.classifier.ClassifyText(ctx, user.Engine, msg.Text)
	if err != nil {
		b.sendMessage(msg.Chat.ID, formatError(err))
		return
	}
	b.sendMessage(msg.Chat.ID, formatTextResult(result))
}

// handleMovie ищет фильм и анализирует отзывы
func (b *Bot) handleMovie(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	if !b.requireEnabled(msg.Chat.ID) {
		return
	}

	if !b.acquire(ctx, user) {
		return
	}
	defer b.release(ctx, user, entity.StateAwaitingMovie)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	report, err := b.movies.Analyze(ctx, msg.Text, user.Engine)
	if err != nil {
		b.sendMessage(msg.Chat.ID, formatError(err))
		return
	}
	b.sendMessage(msg.Chat.ID, formatMovieReport(report))
}

// handlePhoto анализирует эмоции на фото и отправляет картинку с подсветкой лиц
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID
	if !b.requireEnabled(chatID) {
		return
	}

	if !b.acquire(ctx, user) {
		return
	}
	defer b.release(ctx, user, entity.StateAwaitingPhoto)

	b.sendMessage(chatID, msgProcessing)

	// Файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.logger.Error("failed to download photo", zap.String("file_id", photo.FileID), zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	analysis, err := b.images.Analyze(ctx, imageData, photo.FileID+".jpg")
	if err != nil {
		b.sendMessage(chatID, formatError(err))
		return
	}

	text := formatImageResult(analysis)
	if len(analysis.Annotated) == 0 {
		b.sendMessage(chatID, text)
		return
	}

	reply := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "faces.jpg", Bytes: analysis.Annotated})
	reply.Caption = text
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("failed to send photo", zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, text)
	}
}

func (b *Bot) requireEnabled(chatID int64) bool {
	if b.classifier.Enabled() {
		return true
	}
	b.sendMessage(chatID, msgDisabled)
	return false
}

// acquire помечает пользователя занятым; второй запрос во время обработки получает msgBusy
func (b *Bot) acquire(ctx context.Context, user *entity.User) bool {
	updated, err := b.users.Acquire(ctx, user.ID, user.ChatID)
	if err != nil {
		if errors.Is(err, app.ErrUserBusy) {
			b.sendMessage(user.ChatID, msgBusy)
			return false
		}
		b.logger.Error("failed to acquire user", zap.Int64("user_id", user.ID), zap.Error(err))
		b.sendMessage(user.ChatID, msgProcessingError)
		return false
	}
	*user = *updated
	return true
}

func (b *Bot) release(ctx context.Context, user *entity.User, state entity.UserState) {
	updated, err := b.users.Release(ctx, user.ID, user.ChatID, state)
	if err != nil {
		b.logger.Error("failed to release user", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}
	*user = *updated
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.users.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		b.logger.Error("failed to save user state", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}
	user.SetState(state)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("download file: " + resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
