package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"creatingtasks/internal/adapter/http/dto"
)

// Sender is the subset of *tgbotapi.BotAPI the bot writes through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot drives the chat conversation. It keeps no state besides the session
// store; tasks are always read back from the REST API.
type Bot struct {
	sender   Sender
	api      TaskAPI
	sessions *SessionStore
}

func New(sender Sender, api TaskAPI, sessions *SessionStore) *Bot {
	return &Bot{sender: sender, api: api, sessions: sessions}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Chat != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.start(chatID, msg.From)
		case "menu":
			b.showMainMenu(chatID)
		case "tasks":
			b.showMyTasks(ctx, chatID)
		case "help":
			b.reply(chatID, msgCommands)
		default:
			b.reply(chatID, msgUnknown)
		}
		return
	}

	if b.sessions.Get(chatID).State == StateWaitingForAuth {
		b.authenticate(ctx, chatID, msg.From, msg.Text)
		return
	}

	switch strings.TrimSpace(msg.Text) {
	case menuButtonTasks:
		b.showMyTasks(ctx, chatID)
	case menuButtonHelp:
		b.reply(chatID, msgCommands)
	default:
		b.reply(chatID, msgUnknown)
	}
}

func (b *Bot) start(chatID int64, from *tgbotapi.User) {
	name := ""
	if from != nil {
		name = from.FirstName
	}
	b.sessions.SetState(chatID, StateWaitingForAuth)
	b.reply(chatID, fmt.Sprintf(msgGreeting, name))
}

func (b *Bot) authenticate(ctx context.Context, chatID int64, from *tgbotapi.User, text string) {
	if from == nil {
		b.reply(chatID, msgAuthFailed)
		return
	}

	req := dto.TelegramLoginRequest{
		Email:      strings.TrimSpace(text),
		TelegramID: from.ID,
	}
	if from.UserName != "" {
		username := from.UserName
		req.TelegramUsername = &username
	}

	session, err := b.api.TelegramLogin(ctx, req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			b.reply(chatID, msgAuthRejected)
			return
		}
		zap.L().Error("telegram login failed", zap.Int64("chat_id", chatID), zap.Error(err))
		b.reply(chatID, msgAuthFailed)
		return
	}

	b.sessions.Authenticate(chatID, session.Token)
	zap.L().Info("chat authenticated", zap.Int64("chat_id", chatID), zap.Uint64("user_id", session.User.ID))
	b.reply(chatID, msgAuthSuccess)
}

func (b *Bot) showMainMenu(chatID int64) {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(menuButtonTasks)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(menuButtonHelp)),
	)
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, msgMainMenu)
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) showMyTasks(ctx context.Context, chatID int64) {
	token := b.sessions.Get(chatID).Token
	if token == "" {
		b.reply(chatID, msgNeedAuth)
		return
	}

	tasks, err := b.api.MyTasks(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			b.sessions.Reset(chatID)
			b.reply(chatID, msgNeedAuth)
			return
		}
		zap.L().Error("failed to load tasks", zap.Int64("chat_id", chatID), zap.Error(err))
		b.reply(chatID, msgTasksFailed)
		return
	}

	if len(tasks) == 0 {
		b.reply(chatID, msgNoTasks)
		return
	}
	for _, task := range tasks {
		msg := tgbotapi.NewMessage(chatID, FormatTask(task))
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyMarkup = taskKeyboard(task)
		b.send(msg)
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID, messageID := callbackTarget(query)
	token := b.sessions.Get(chatID).Token
	if token == "" {
		b.answer(query.ID, msgCallbackAuth)
		return
	}

	if raw, ok := strings.CutPrefix(query.Data, callbackCompletePrefix); ok {
		if taskID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			b.completeTask(ctx, query.ID, chatID, messageID, token, taskID)
			return
		}
	}
	if raw, ok := strings.CutPrefix(query.Data, callbackDetailsPrefix); ok {
		if taskID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			b.showTaskDetails(ctx, query.ID, chatID, token, taskID)
			return
		}
	}
	b.answer(query.ID, msgUnsupportedAction)
}

func (b *Bot) completeTask(ctx context.Context, queryID string, chatID int64, messageID int, token string, taskID uint64) {
	task, err := b.api.CompleteTask(ctx, token, taskID)
	if err != nil {
		zap.L().Warn("failed to complete task", zap.Int64("chat_id", chatID), zap.Uint64("task_id", taskID), zap.Error(err))
		b.answer(queryID, msgCompleteFailed)
		return
	}

	b.answer(queryID, msgTaskCompleted)
	if messageID == 0 {
		return
	}
	keyboard := taskKeyboard(task)
	edit := tgbotapi.NewEditMessageText(chatID, messageID, FormatTask(task))
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = &keyboard
	b.send(edit)
}

func (b *Bot) showTaskDetails(ctx context.Context, queryID string, chatID int64, token string, taskID uint64) {
	task, err := b.api.GetTask(ctx, token, taskID)
	if err != nil {
		zap.L().Warn("failed to load task", zap.Int64("chat_id", chatID), zap.Uint64("task_id", taskID), zap.Error(err))
		b.answer(queryID, msgDetailsFailed)
		return
	}

	b.answer(queryID, "")
	msg := tgbotapi.NewMessage(chatID, FormatTaskDetails(task))
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

// taskKeyboard hides the complete button once the task is completed.
func taskKeyboard(task dto.TaskItem) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatUint(task.ID, 10)
	var rows [][]tgbotapi.InlineKeyboardButton
	if task.Status != "completed" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonComplete, callbackCompletePrefix+id),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(buttonDetails, callbackDetailsPrefix+id),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func callbackTarget(query *tgbotapi.CallbackQuery) (int64, int) {
	if query.Message != nil && query.Message.Chat != nil {
		return query.Message.Chat.ID, query.Message.MessageID
	}
	if query.From != nil {
		return query.From.ID, 0
	}
	return 0, 0
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.sender.Send(c); err != nil {
		zap.L().Warn("failed to send telegram message", zap.Error(err))
	}
}

func (b *Bot) answer(queryID, text string) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		zap.L().Warn("failed to answer callback", zap.String("callback_id", queryID), zap.Error(err))
	}
}
