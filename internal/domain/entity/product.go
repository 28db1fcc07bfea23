package entity

// Product is one catalog item. Owned and mutated only by the data service;
// clients treat it as immutable.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}
