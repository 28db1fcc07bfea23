package telegram

import (
	"fmt"
	"strings"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

const helpMessage = `Grocery bot commands:

/products [category] - browse the catalog, optionally one category
/search <text> - find products, e.g. "chutney under 50"
/categorize <item> - show which category an item falls under
/addtocart <text> - add an item, e.g. "2 packs dosa batter"
/cart - show your cart
/remove <n> - remove cart line n
/checkout - place the order
/order <number> - track an order
/help - this message

You can also just type what you need and I will search for it.`

func formatProducts(products []entity.Product) string {
	if len(products) == 0 {
		return "No products matched."
	}
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "%d: %s - ₹%.2f", p.ID, p.Name, p.Price)
		if p.Category != "" {
			fmt.Fprintf(&b, " (%s)", p.Category)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatCart(lines []entity.CartLine, total float64) string {
	if len(lines) == 0 {
		return "Your cart is empty. Try /addtocart or just tell me what you need."
	}
	var b strings.Builder
	b.WriteString("Your cart:\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s x%d - ₹%.2f\n", i+1, line.Name, line.Quantity, line.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "Total: ₹%.2f", total)
	return b.String()
}

func formatOrderConfirmation(order entity.Order) string {
	if order.OrderNo == 0 {
		return fmt.Sprintf("Order placed for ₹%.2f. The service did not return an order number; use /cart to start a new cart.", order.Total)
	}
	return fmt.Sprintf("Order #%d placed for ₹%.2f. Track it with /order %d.", order.OrderNo, order.Total, order.OrderNo)
}

// formatOrderStatus renders the order items and the delivery ladder with the
// current rung marked.
func formatOrderStatus(order entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d - ₹%.2f\n", order.OrderNo, order.Total)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d\n", item.Name, item.Quantity)
	}
	b.WriteByte('\n')

	current := entity.StatusIndex(order.Status)
	for i, status := range entity.StatusSequence {
		switch {
		case i < current:
			fmt.Fprintf(&b, "✅ %s\n", status)
		case i == current:
			fmt.Fprintf(&b, "▶️ %s\n", status)
		default:
			fmt.Fprintf(&b, "◻️ %s\n", status)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
