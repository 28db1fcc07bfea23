package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleText treats any plain message as a catalog search.
func (h *BotHandler) handleText(ctx context.Context, message *tgbotapi.Message) {
	h.runSearch(ctx, message, message.Text)
}
