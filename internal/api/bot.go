package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"cvtune/internal/container"
	"cvtune/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для удалённой настройки ползунков.

📋 Команды:
/values — текущие значения
/set — изменить значение
/reset — сбросить все ползунки
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

/values [имя...] — значения ползунков и групп
/set <имя> <значение> — одно значение (для группы — всем участникам)
/set <группа> <v1> <v2> ... — по значению на участника
/reset — вернуть значения сброса
/save <метка> — сохранить снимок
/load <метка> — загрузить снимок
/snapshots — список снимков`

	msgUnknownCommand = "❓ Неизвестная команда. Используйте /help для справки."
	msgSendCommand    = "📋 Отправьте команду, например /values."
	msgResetDone      = "🔄 Ползунки сброшены."
	msgNoSnapshots    = "📭 Снимков пока нет."
	msgSetUsage       = "⚠️ Формат: /set <имя> <значение> [значение...]"
	msgLabelUsage     = "⚠️ Укажите метку снимка."
)

// Bot представляет Telegram-бота для настройки доски
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
	log zerolog.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log = log.With().Str("component", "telegram").Logger()
	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api: api,
		app: app,
		log: log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, msgSendCommand)
		return
	}
	b.sendMessage(msg.Chat.ID, b.reply(ctx, msg.Command(), msg.CommandArguments()))
}

// reply выполняет команду и возвращает текст ответа
func (b *Bot) reply(ctx context.Context, command, args string) string {
	tuner := b.app.TunerService

	switch command {
	case "start":
		return msgStart

	case "help":
		return msgHelp

	case "values":
		text, err := tuner.Format(strings.Fields(args)...)
		if err != nil {
			return errorText(err)
		}
		return text

	case "set":
		name, values, err := parseSet(args)
		if err != nil {
			return msgSetUsage
		}
		if err := tuner.Set(name, values...); err != nil {
			return errorText(err)
		}
		r, err := tuner.Read(name)
		if err != nil {
			return errorText(err)
		}
		return formatReading(r)

	case "reset":
		if err := tuner.Reset(); err != nil {
			return errorText(err)
		}
		return msgResetDone

	case "save", "load":
		label := strings.TrimSpace(args)
		if label == "" {
			return msgLabelUsage
		}
		if command == "save" {
			if err := tuner.SaveSnapshot(ctx, label); err != nil {
				return errorText(err)
			}
			return fmt.Sprintf("💾 Снимок %q сохранён.", label)
		}
		if err := tuner.LoadSnapshot(ctx, label); err != nil {
			return errorText(err)
		}
		return fmt.Sprintf("📂 Снимок %q загружен.", label)

	case "snapshots":
		labels, err := tuner.Snapshots(ctx)
		if err != nil {
			return errorText(err)
		}
		if len(labels) == 0 {
			return msgNoSnapshots
		}
		return "📚 " + strings.Join(labels, ", ")

	default:
		return msgUnknownCommand
	}
}

// parseSet разбирает аргументы /set: имя и одно или несколько целых
func parseSet(args string) (string, []int, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "", nil, errors.New("not enough arguments")
	}

	values := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return "", nil, fmt.Errorf("value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return fields[0], values, nil
}

func formatReading(r entity.Reading) string {
	if r.Group {
		return fmt.Sprintf("✅ '%s': %s", r.Name, entity.FormatTuple(r.Values))
	}
	return fmt.Sprintf("✅ '%s': %d", r.Name, r.Int())
}

func errorText(err error) string {
	return "⚠️ " + err.Error()
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}
