package telegram

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/grocery-order-bot/internal/domain/constants"
	"github.com/yourusername/grocery-order-bot/internal/infrastructure/rest"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		logger.ErrorLogger.Printf("sendMessage skipped (bot is nil) chat=%d", chatID)
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}

	for _, chunk := range splitIntoChunks(text, constants.MaxTelegramMessage) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := h.bot.Send(msg); err != nil {
			logger.ErrorLogger.Printf("send to chat %d: %v", chatID, err)
			return
		}
	}
}

// sendError reports a failed backend call. Service diagnostics are passed
// through truncated so the user sees what the data service said.
func (h *BotHandler) sendError(chatID int64, action string, err error) {
	logger.ErrorLogger.Printf("%s (chat %d): %v", action, chatID, err)
	var statusErr *rest.StatusError
	if errors.As(err, &statusErr) {
		h.sendMessage(chatID, fmt.Sprintf("Could not %s: the data service returned HTTP %d.\n%s",
			action, statusErr.StatusCode, truncate(statusErr.Body, constants.MaxDiagnosticLen)))
		return
	}
	h.sendMessage(chatID, fmt.Sprintf("Could not %s: %s", action, truncate(err.Error(), constants.MaxDiagnosticLen)))
}

// truncate cuts s to at most limit bytes, stepping back to a rune boundary
// so the result stays valid UTF-8 for the Telegram API.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if current.Len() >= limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
