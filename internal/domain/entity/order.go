package entity

import "time"

// Order statuses, owned by the data service. Clients only ever read them.
const (
	StatusOrderReceived = "Order received"
	StatusProcessing    = "Processing"
	StatusInTransit     = "In Transit"
	StatusDelivered     = "Delivered"
)

// StatusSequence is the fixed lifecycle an order moves through.
var StatusSequence = []string{
	StatusOrderReceived,
	StatusProcessing,
	StatusInTransit,
	StatusDelivered,
}

// StatusIndex returns the position of status in the lifecycle, or -1.
func StatusIndex(status string) int {
	for i, s := range StatusSequence {
		if s == status {
			return i
		}
	}
	return -1
}

// Order is an order record. ID and OrderNo are assigned by the data service
// on creation.
type Order struct {
	ID        string     `json:"id,omitempty"`
	OrderNo   int64      `json:"order_no,omitempty"`
	UserID    string     `json:"user_id"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
