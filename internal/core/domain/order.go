package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a marketplace order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyOrder = errors.New("order has no items")

// OrderItem is one purchased line, denormalised from the product catalog at
// order time so the order stays readable after catalog edits.
type OrderItem struct {
	ProductID    string        `json:"product_id" bson:"product_id"`
	SellerID     string        `json:"seller_id" bson:"seller_id"`
	Name         string        `json:"name" bson:"name"`
	Category     string        `json:"category" bson:"category"`
	Unit         UnitOfMeasure `json:"unit" bson:"unit"`
	Quantity     float64       `json:"quantity" bson:"quantity"`
	SelectedSize string        `json:"selected_size,omitempty" bson:"selected_size,omitempty"`
	UnitPrice    float64       `json:"unit_price" bson:"unit_price"`
	Subtotal     float64       `json:"subtotal" bson:"subtotal"`
}

// SellerDelivery summarises one seller's independent shipment inside a
// multi-seller order.
type SellerDelivery struct {
	SellerID    string  `json:"seller_id" bson:"seller_id"`
	VehicleID   string  `json:"vehicle_id" bson:"vehicle_id"`
	VehicleName string  `json:"vehicle_name" bson:"vehicle_name"`
	WeightGrams float64 `json:"weight_grams" bson:"weight_grams"`
	Trips       int     `json:"trips" bson:"trips"`
	Cost        float64 `json:"cost" bson:"cost"`
}

// DeliveryDetails is the delivery-engine result embedded in an order for
// persistence and customer display. For multi-seller orders the vehicle
// fields are empty and PerSeller carries the per-shipment breakdown; Trips is
// then the maximum across sellers, since sellers ship in parallel.
type DeliveryDetails struct {
	VehicleID        string           `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	VehicleName      string           `json:"vehicle_name,omitempty" bson:"vehicle_name,omitempty"`
	TotalWeightGrams float64          `json:"total_weight_grams" bson:"total_weight_grams"`
	TotalWeightKg    string           `json:"total_weight_kg" bson:"total_weight_kg"`
	DistanceKm       float64          `json:"distance_km" bson:"distance_km"`
	Trips            int              `json:"trips" bson:"trips"`
	UtilizationPct   float64          `json:"utilization_pct" bson:"utilization_pct"`
	BaseFee          float64          `json:"base_fee" bson:"base_fee"`
	DistanceFee      float64          `json:"distance_fee" bson:"distance_fee"`
	CostPerTrip      float64          `json:"cost_per_trip" bson:"cost_per_trip"`
	TotalCost        float64          `json:"total_cost" bson:"total_cost"`
	Warnings         []string         `json:"warnings,omitempty" bson:"warnings,omitempty"`
	Recommendations  []string         `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	PerSeller        []SellerDelivery `json:"per_seller,omitempty" bson:"per_seller,omitempty"`
}

// Order is the core aggregate root.
type Order struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Reference   string          `json:"reference" bson:"reference"`
	BuyerID     string          `json:"buyer_id" bson:"buyer_id"`
	Items       []OrderItem     `json:"items" bson:"items"`
	ItemsTotal  float64         `json:"items_total" bson:"items_total"`
	ShippingFee float64         `json:"shipping_fee" bson:"shipping_fee"`
	GrandTotal  float64         `json:"grand_total" bson:"grand_total"`
	Delivery    DeliveryDetails `json:"delivery" bson:"delivery"`
	Status      OrderStatus     `json:"status" bson:"status"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
}
