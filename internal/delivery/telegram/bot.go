package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/grocery-order-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	catalogUseCase *usecase.CatalogUsecase
	cartUseCase    *usecase.CartUsecase
	orderUseCase   *usecase.OrderUsecase

	// category picked via /products <category>, applied to later searches
	categoryMu sync.RWMutex
	categories map[int64]string
}

func NewBotHandler(
	bot *tgbotapi.BotAPI,
	catalogUseCase *usecase.CatalogUsecase,
	cartUseCase *usecase.CartUsecase,
	orderUseCase *usecase.OrderUsecase,
) *BotHandler {
	return &BotHandler{
		bot:            bot,
		catalogUseCase: catalogUseCase,
		cartUseCase:    cartUseCase,
		orderUseCase:   orderUseCase,
		categories:     make(map[int64]string),
	}
}

func (h *BotHandler) selectedCategory(userID int64) string {
	h.categoryMu.RLock()
	defer h.categoryMu.RUnlock()
	return h.categories[userID]
}

func (h *BotHandler) setSelectedCategory(userID int64, category string) {
	h.categoryMu.Lock()
	defer h.categoryMu.Unlock()
	if category == "" {
		delete(h.categories, userID)
		return
	}
	h.categories[userID] = category
}
