package domain

import "time"

// OrderStatus is the fulfilment state of a single order row.
type OrderStatus string

const (
	StatusPlaced     OrderStatus = "order placed"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Payment states recorded on an order.
const (
	PaymentPaid = "Paid"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPlaced:     {StatusConfirmed: true, StatusProcessing: true, StatusShipped: true, StatusDelivered: true},
	StatusConfirmed:  {StatusProcessing: true, StatusShipped: true, StatusDelivered: true},
	StatusProcessing: {StatusShipped: true, StatusDelivered: true},
	StatusShipped:    {StatusDelivered: true},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether a nursery may move an order from one
// status to another. Skipping ahead is allowed, moving back is not.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// CanCancel reports whether the customer may still cancel an order.
// Once goods ship the order is out of their hands.
func CanCancel(s OrderStatus) bool {
	switch s {
	case StatusShipped, StatusDelivered, StatusCancelled:
		return false
	}
	return true
}

// OrderItem is the plant snapshot frozen into an order at checkout.
type OrderItem struct {
	PlantID    string `json:"plantId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// Order is one purchased cart line. Checkout deliberately splits a cart
// into one order row per line so each nursery sees only its own rows.
type Order struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	NurseryID      *string     `json:"nurseryId,omitempty"`
	PlantID        string      `json:"plantId"`
	Quantity       int         `json:"quantity"`
	UnitPriceCents int64       `json:"unitPriceCents"`
	TotalCents     int64       `json:"totalCents"`
	Status         OrderStatus `json:"status"`
	PaymentStatus  string      `json:"paymentStatus"`
	PaymentRef     string      `json:"paymentRef,omitempty"`
	Item           OrderItem   `json:"item"`
	Address        Address     `json:"address"`
	CreatedAt      time.Time   `json:"createdAt"`
}
