package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/cart"
)

// Error is the uniform problem response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StartOrderRequest opens a new order session.
type StartOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

// StartOrderResponse returns the new session id.
type StartOrderResponse struct {
	OrderID string `json:"order_id"`
}

// AddItemRequest puts an item into the session cart.
type AddItemRequest struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// ChangeQuantityRequest sets a new quantity for a cart line.
type ChangeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateStatusRequest sets the session's customer-facing status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ConfirmOrderRequest settles the session.
type ConfirmOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	CVV           string `json:"cvv,omitempty"`
}

// ConfirmOrderResponse carries the confirmation issued on approval.
type ConfirmOrderResponse struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

// CartItem is one cart line in a cart snapshot.
type CartItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartResponse is the cart snapshot with derived pricing.
type CartResponse struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	DeliveryFee float64    `json:"delivery_fee"`
	Total       float64    `json:"total"`
	Status      string     `json:"status"`
}

// CheckoutResponse is the checkout snapshot.
type CheckoutResponse struct {
	Items           []CartItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Tax             float64    `json:"tax"`
	DeliveryFee     float64    `json:"delivery_fee"`
	Total           float64    `json:"total"`
	DeliveryAddress string     `json:"delivery_address"`
}

// OrderRecord is one confirmed order in a read result.
type OrderRecord struct {
	OrderID           string    `json:"order_id"`
	CustomerID        string    `json:"customer_id"`
	DeliveryAddress   string    `json:"delivery_address"`
	Total             float64   `json:"total"`
	TransactionID     string    `json:"transaction_id"`
	Status            string    `json:"status"`
	EstimatedDelivery string    `json:"estimated_delivery"`
	PlacedAt          time.Time `json:"placed_at"`
}

// AddAddressRequest stores a labeled delivery address.
type AddAddressRequest struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

// SwitchAddressRequest picks the current delivery address by label.
type SwitchAddressRequest struct {
	Label string `json:"label"`
}

// AddFavoriteRequest marks a restaurant as a favorite.
type AddFavoriteRequest struct {
	RestaurantName string `json:"restaurant_name"`
}

// RateDishRequest rates a dish.
type RateDishRequest struct {
	DishName string `json:"dish_name"`
	Rating   int    `json:"rating"`
}

// ProfileAddress is one labeled address in a profile read result.
type ProfileAddress struct {
	Label   string `json:"label"`
	Address string `json:"address"`
	Current bool   `json:"current"`
}

// ProfileResponse is the profile read model.
type ProfileResponse struct {
	CustomerID string           `json:"customer_id"`
	Addresses  []ProfileAddress `json:"addresses"`
	Favorites  []string         `json:"favorites"`
	Ratings    map[string]int   `json:"ratings"`
}

// MenuResponse lists the restaurant's offering.
type MenuResponse struct {
	RestaurantName string   `json:"restaurant_name"`
	Items          []string `json:"items"`
}

func cartItems(items []queries.CartItemResponse) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = CartItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal.Float64(),
		}
	}
	return out
}

func checkoutItems(items []cart.ItemView) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = CartItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal.Float64(),
		}
	}
	return out
}

func orderRecords(records []queries.OrderRecordResponse) []OrderRecord {
	out := make([]OrderRecord, len(records))
	for i, record := range records {
		out[i] = OrderRecord{
			OrderID:           record.ID.String(),
			CustomerID:        record.CustomerID,
			DeliveryAddress:   record.DeliveryAddress,
			Total:             record.Total.Float64(),
			TransactionID:     record.TransactionID,
			Status:            record.Status,
			EstimatedDelivery: record.EstimatedDelivery,
			PlacedAt:          record.PlacedAt,
		}
	}
	return out
}
