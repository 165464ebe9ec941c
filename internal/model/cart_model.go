package model

import "time"

// CartItem is one pending selection inside a cart.
type CartItem struct {
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// Cart maps product key to the pending selection. A key with quantity zero
// is never stored; removal on zero is enforced by the cart service.
type Cart map[string]CartItem

// CartSnapshot is the persisted form of a cart. Snapshots older than the
// cart TTL are discarded on load.
type CartSnapshot struct {
	Items      Cart      `json:"items"`
	Timestamp  time.Time `json:"timestamp"`
	CustomerID string    `json:"customerId"`
	Version    string    `json:"version"`
}

// CartLine is one priced row of the cart summary shown at checkout.
type CartLine struct {
	ProductKey        string  `json:"productKey"`
	Name              string  `json:"name"`
	Quantity          int     `json:"quantity"`
	PricePerKg        float64 `json:"pricePerKg"`
	EstimatedWeightKg float64 `json:"estimatedWeightKg"`
	LineWeightKg      float64 `json:"lineWeightKg"`
	LineTotal         float64 `json:"lineTotal"`
}

// CartSummary is returned by GET /cart and reused when composing an order.
type CartSummary struct {
	Lines            []CartLine `json:"lines"`
	DistinctProducts int        `json:"distinctProducts"`
	TotalUnits       int        `json:"totalUnits"`
	TotalWeightKg    float64    `json:"totalWeightKg"`
	EstimatedTotal   float64    `json:"estimatedTotal"`
	Warning          string     `json:"warning,omitempty"`
}
