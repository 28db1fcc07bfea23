package entity

// CartLine is one line of a user's cart. The price is the snapshot price at
// the time the product was added; checkout does not re-validate it.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartTotal sums price x quantity over all lines.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
