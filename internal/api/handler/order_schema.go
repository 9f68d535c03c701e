package handler

type orderItemRequest struct {
	ProductID    string  `json:"product_id" validate:"required"`
	Quantity     float64 `json:"quantity"   validate:"required,gt=0"`
	SelectedSize string  `json:"selected_size"`
}

type orderGroupRequest struct {
	SellerID   string             `json:"seller_id"   validate:"required"`
	Items      []orderItemRequest `json:"items"       validate:"required,min=1,dive"`
	DistanceKm float64            `json:"distance_km" validate:"gte=0"`
}

type createOrderRequest struct {
	BuyerID    string              `json:"buyer_id"    validate:"required"`
	Groups     []orderGroupRequest `json:"groups"      validate:"required,min=1,dive"`
	DistanceKm float64             `json:"distance_km" validate:"gte=0"`
	VehicleID  string              `json:"vehicle_id"`
}

type orderLinks struct {
	Self string `json:"self"`
}

type sellerDeliveryResponse struct {
	SellerID    string  `json:"seller_id"`
	VehicleID   string  `json:"vehicle_id"`
	VehicleName string  `json:"vehicle_name"`
	WeightGrams float64 `json:"weight_grams"`
	Trips       int     `json:"trips"`
	Cost        float64 `json:"cost"`
}

type deliveryDetailsResponse struct {
	VehicleID        string                   `json:"vehicle_id,omitempty"`
	VehicleName      string                   `json:"vehicle_name,omitempty"`
	TotalWeightGrams float64                  `json:"total_weight_grams"`
	TotalWeightKg    string                   `json:"total_weight_kg"`
	DistanceKm       float64                  `json:"distance_km"`
	Trips            int                      `json:"trips"`
	TotalCost        float64                  `json:"total_cost"`
	Warnings         []string                 `json:"warnings,omitempty"`
	PerSeller        []sellerDeliveryResponse `json:"per_seller,omitempty"`
}

type createOrderResponse struct {
	Reference   string                  `json:"reference"`
	Status      string                  `json:"status"`
	ItemsTotal  float64                 `json:"items_total"`
	ShippingFee float64                 `json:"shipping_fee"`
	GrandTotal  float64                 `json:"grand_total"`
	Delivery    deliveryDetailsResponse `json:"delivery"`
	CreatedAt   string                  `json:"created_at"`
	Links       orderLinks              `json:"_links"`
}

type orderItemResponse struct {
	ProductID    string  `json:"product_id"`
	SellerID     string  `json:"seller_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	SelectedSize string  `json:"selected_size,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
}

type getOrderResponse struct {
	Reference   string                  `json:"reference"`
	BuyerID     string                  `json:"buyer_id"`
	Status      string                  `json:"status"`
	Items       []orderItemResponse     `json:"items"`
	ItemsTotal  float64                 `json:"items_total"`
	ShippingFee float64                 `json:"shipping_fee"`
	GrandTotal  float64                 `json:"grand_total"`
	Delivery    deliveryDetailsResponse `json:"delivery"`
	CreatedAt   string                  `json:"created_at"`
	Links       orderLinks              `json:"_links"`
}

type orderSummaryResponse struct {
	Reference   string  `json:"reference"`
	BuyerID     string  `json:"buyer_id"`
	Status      string  `json:"status"`
	ItemCount   int     `json:"item_count"`
	GrandTotal  float64 `json:"grand_total"`
	ShippingFee float64 `json:"shipping_fee"`
	VehicleID   string  `json:"vehicle_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type listOrdersResponse struct {
	Data       []orderSummaryResponse `json:"data"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}
