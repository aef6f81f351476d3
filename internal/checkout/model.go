package checkout

import "github.com/YonatanCohen1020/nightwing-site/internal/cart"

// OrderItem is a cart line frozen into an order.
type OrderItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Price       int               `json:"price"`
	Quantity    int               `json:"quantity"`
	ComboConfig *cart.ComboConfig `json:"comboConfig,omitempty"`
}

// Order is the payload posted to the order webhook. Field names are
// part of the wire contract with the receiving automation.
type Order struct {
	Items           []OrderItem `json:"items"`
	OrderTime       string      `json:"orderTime"` // ISO-8601
	PaymentMethod   string      `json:"paymentMethod"`
	CustomerName    string      `json:"customerName"`
	PhoneNumber     string      `json:"phoneNumber"`
	OrderType       string      `json:"orderType"`
	DeliveryAddress *string     `json:"deliveryAddress"` // null unless delivery
	Total           int         `json:"total"`
}

// Request is the checkout form as submitted.
type Request struct {
	CustomerName    string `json:"customerName"`
	PhoneNumber     string `json:"phoneNumber"`
	OrderType       string `json:"orderType"`     // "pickup" | "delivery"
	PaymentMethod   string `json:"paymentMethod"` // "cash" | "paybox"
	DeliveryAddress string `json:"deliveryAddress"`
}
