package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/grocery-order-bot/internal/query"
	"github.com/yourusername/grocery-order-bot/internal/usecase"
)

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}
	cmd := extractCommand(message)
	if cmd == "" {
		h.sendMessage(message.Chat.ID, "Unknown command. /help for the list.")
		return
	}

	switch cmd {
	case "start":
		h.sendMessage(message.Chat.ID, "Hi! I help you order groceries.\n\n"+helpMessage)
	case "help":
		h.sendMessage(message.Chat.ID, helpMessage)
	case "categorize":
		h.handleCategorizeCommand(message)
	case "products":
		h.handleProductsCommand(ctx, message)
	case "search":
		h.handleSearchCommand(ctx, message)
	case "addtocart":
		h.handleAddToCartCommand(ctx, message)
	case "cart":
		h.handleCartCommand(ctx, message)
	case "remove":
		h.handleRemoveCommand(ctx, message)
	case "checkout":
		h.handleCheckoutCommand(ctx, message)
	case "order":
		h.handleOrderCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Unknown command. /help for the list.")
	}
}

func (h *BotHandler) handleCategorizeCommand(message *tgbotapi.Message) {
	item := strings.TrimSpace(message.CommandArguments())
	if item == "" {
		h.sendMessage(message.Chat.ID, "Usage: /categorize <item>, e.g. /categorize sambar powder")
		return
	}
	h.sendMessage(message.Chat.ID, fmt.Sprintf("%q falls under: %s", item, query.Categorize(item)))
}

func (h *BotHandler) handleProductsCommand(ctx context.Context, message *tgbotapi.Message) {
	category := strings.TrimSpace(message.CommandArguments())
	h.setSelectedCategory(message.From.ID, category)

	var out string
	if category == "" {
		products, err := h.catalogUseCase.Snapshot(ctx)
		if err != nil {
			h.sendError(message.Chat.ID, "load the catalog", err)
			return
		}
		out = formatProducts(products)
	} else {
		products, _, err := h.catalogUseCase.Search(ctx, "", category)
		if err != nil {
			h.sendError(message.Chat.ID, "load the catalog", err)
			return
		}
		if len(products) == 0 {
			h.sendMessage(message.Chat.ID, fmt.Sprintf("No products in category %q.", category))
			return
		}
		out = fmt.Sprintf("Products in %s:\n%s", category, formatProducts(products))
	}
	h.sendMessage(message.Chat.ID, out)
}

func (h *BotHandler) handleSearchCommand(ctx context.Context, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.CommandArguments())
	if text == "" {
		h.sendMessage(message.Chat.ID, "Usage: /search <text>, e.g. /search chutney under 50")
		return
	}
	h.runSearch(ctx, message, text)
}

func (h *BotHandler) runSearch(ctx context.Context, message *tgbotapi.Message, text string) {
	products, q, err := h.catalogUseCase.Search(ctx, text, h.selectedCategory(message.From.ID))
	if err != nil {
		h.sendError(message.Chat.ID, "search the catalog", err)
		return
	}
	if len(products) == 0 {
		what := q.Name
		if what == "" {
			what = q.Category
		}
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Nothing found for %q. Try /products to browse.", what))
		return
	}
	h.sendMessage(message.Chat.ID, formatProducts(products))
}

func (h *BotHandler) handleAddToCartCommand(ctx context.Context, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.CommandArguments())
	if text == "" {
		h.sendMessage(message.Chat.ID, "Usage: /addtocart <item>, e.g. /addtocart 2 packs dosa batter")
		return
	}

	result, err := h.cartUseCase.AddByText(ctx, message.From.ID, text)
	if errors.Is(err, usecase.ErrNoMatch) {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("No product matched %q. Try /products to see what's available.", text))
		return
	}
	if err != nil {
		h.sendError(message.Chat.ID, "add to cart", err)
		return
	}

	out := fmt.Sprintf("Added %s x%d to your cart.", result.Line.Name, result.Line.Quantity)
	if result.Recommendation != nil {
		out += fmt.Sprintf("\n\nGoes well with %s (₹%.2f) - /addtocart %s",
			result.Recommendation.Name, result.Recommendation.Price, result.Recommendation.Name)
	}
	h.sendMessage(message.Chat.ID, out)
}

func (h *BotHandler) handleCartCommand(ctx context.Context, message *tgbotapi.Message) {
	lines, total, err := h.cartUseCase.View(ctx, message.From.ID)
	if err != nil {
		h.sendError(message.Chat.ID, "read your cart", err)
		return
	}
	h.sendMessage(message.Chat.ID, formatCart(lines, total))
}

func (h *BotHandler) handleRemoveCommand(ctx context.Context, message *tgbotapi.Message) {
	arg := strings.TrimSpace(message.CommandArguments())
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		h.sendMessage(message.Chat.ID, "Usage: /remove <n> where n is the line number from /cart")
		return
	}

	removed, err := h.cartUseCase.Remove(ctx, message.From.ID, n-1)
	if err != nil {
		h.sendError(message.Chat.ID, "update your cart", err)
		return
	}
	if !removed {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Your cart has no line %d.", n))
		return
	}

	lines, total, err := h.cartUseCase.View(ctx, message.From.ID)
	if err != nil {
		h.sendError(message.Chat.ID, "read your cart", err)
		return
	}
	h.sendMessage(message.Chat.ID, "Removed.\n\n"+formatCart(lines, total))
}

func (h *BotHandler) handleCheckoutCommand(ctx context.Context, message *tgbotapi.Message) {
	order, err := h.orderUseCase.Checkout(ctx, message.From.ID)
	if errors.Is(err, usecase.ErrEmptyCart) {
		h.sendMessage(message.Chat.ID, "Your cart is empty, nothing to check out.")
		return
	}
	if err != nil {
		h.sendError(message.Chat.ID, "place the order", err)
		return
	}
	h.sendMessage(message.Chat.ID, formatOrderConfirmation(order))
}

func (h *BotHandler) handleOrderCommand(ctx context.Context, message *tgbotapi.Message) {
	orderNo := strings.TrimSpace(message.CommandArguments())
	if orderNo == "" {
		h.sendMessage(message.Chat.ID, "Usage: /order <number>, e.g. /order 1042")
		return
	}
	if _, err := strconv.ParseInt(orderNo, 10, 64); err != nil {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("%q is not an order number.", orderNo))
		return
	}

	order, err := h.orderUseCase.Track(ctx, orderNo)
	if err != nil {
		h.sendError(message.Chat.ID, "look up the order", err)
		return
	}
	if order == nil {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("No order #%s found.", orderNo))
		return
	}
	h.sendMessage(message.Chat.ID, formatOrderStatus(*order))
}

func extractCommand(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}
	if msg.IsCommand() {
		return msg.Command()
	}
	txt := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(txt, "/") {
		return ""
	}
	first := strings.Fields(txt)[0]
	first = strings.TrimPrefix(first, "/")
	if first == "" {
		return ""
	}
	parts := strings.SplitN(first, "@", 2)
	return parts[0]
}
