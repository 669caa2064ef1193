// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"fmt"
	"strings"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands wires /start and /help. Only the configured chat gets answers;
// other senders are ignored so the bot stays silent in foreign chats.
func RegisterBotCommands(b *telebot.Bot, chatID string, baseLogger *logrus.Entry) {
	startHelpLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/start")
		if !isConfiguredChat(c.Chat(), chatID) {
			logCtx.Warn("Command from unknown chat ignored")
			return nil
		}
		logCtx = logCtx.WithField("chat_id", c.Chat().ID)
		logCtx.Info("Processing /start command")
		return c.Send("Привет! Я слежу за статусом проверки домашней работы и напишу сюда, когда он изменится.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/help")
		if !isConfiguredChat(c.Chat(), chatID) {
			logCtx.Warn("Command from unknown chat ignored")
			return nil
		}
		logCtx = logCtx.WithField("chat_id", c.Chat().ID)
		logCtx.Info("Processing /help command")
		return c.Send(helpText(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})
}

func isConfiguredChat(chat *telebot.Chat, chatID string) bool {
	if chat == nil {
		return false
	}
	if fmt.Sprint(chat.ID) == chatID {
		return true
	}
	return chat.Username != "" && "@"+chat.Username == chatID
}

func helpText() string {
	var text strings.Builder
	text.WriteString("Я опрашиваю сервис Практикум.Домашка и сообщаю об изменении статуса работы.\n\n")
	text.WriteString("Известные статусы:\n")
	for _, status := range homework.KnownStatuses() {
		verdict, _ := homework.Verdict(string(status))
		text.WriteString(fmt.Sprintf("`%s` - %s\n", status, verdict))
	}
	text.WriteString("\nОб ошибках я пишу один раз, пока текст ошибки не изменится.")
	return text.String()
}
