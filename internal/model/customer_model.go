package model

// Customer is the delivery profile attached to an order. It lives in the
// local store per portal session; there is no customer login.
type Customer struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	Email                string `json:"email,omitempty"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
}
