package telegram

import (
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"gopkg.in/telebot.v3"
)

func TestIsConfiguredChat(t *testing.T) {
	assert.True(t, isConfiguredChat(&telebot.Chat{ID: 42}, "42"))
	assert.True(t, isConfiguredChat(&telebot.Chat{ID: -100123, Username: "hw_channel"}, "@hw_channel"))
	assert.False(t, isConfiguredChat(&telebot.Chat{ID: 7}, "42"))
	assert.False(t, isConfiguredChat(&telebot.Chat{ID: 7}, "@"))
	assert.False(t, isConfiguredChat(nil, "42"))
}

func TestHelpText_ListsCatalog(t *testing.T) {
	text := helpText()
	for _, status := range homework.KnownStatuses() {
		verdict, _ := homework.Verdict(string(status))
		assert.Contains(t, text, string(status))
		assert.Contains(t, text, verdict)
	}
}
