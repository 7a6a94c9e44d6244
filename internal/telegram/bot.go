package telegram

import (
	"fmt"
	"strings"

	"go-hh-autoapply/internal/hh"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// SendOutcome reports one apply attempt: the vacancy, its viewer count and
// the terminal state the classifier ended in.
func (b *Bot) SendOutcome(v hh.Vacancy, outcome hh.Outcome) error {
	icon := "⚠️"
	if outcome.Succeeded() {
		icon = "✅"
	}

	msgText := fmt.Sprintf("%s *%s*\n", icon, b.escapeMarkdown(v.Title))
	msgText += fmt.Sprintf("🔗 [Вакансия](https://hh.ru/vacancy/%s)\n", v.ID)

	if v.WatchersCount != nil {
		msgText += fmt.Sprintf("👀 Сейчас смотрят: %d\n", *v.WatchersCount)
	}

	msgText += fmt.Sprintf("📬 Статус: %s\n", b.escapeMarkdown(outcome.String()))

	msg := tgbotapi.NewMessage(b.chatID, msgText)
	msg.ParseMode = "MarkdownV2"

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
