package handler

import (
	"time"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

const timestampLayout = "2006-01-02T15:04:05Z"

func toCreateOrderInput(req createOrderRequest) ports.CreateOrderInput {
	groups := make([]ports.SellerGroupInput, 0, len(req.Groups))
	for _, g := range req.Groups {
		items := make([]ports.OrderItemInput, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, ports.OrderItemInput{
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				SelectedSize: it.SelectedSize,
			})
		}
		groups = append(groups, ports.SellerGroupInput{
			SellerID:   g.SellerID,
			Items:      items,
			DistanceKm: g.DistanceKm,
		})
	}
	return ports.CreateOrderInput{
		BuyerID:    req.BuyerID,
		Groups:     groups,
		DistanceKm: req.DistanceKm,
		VehicleID:  req.VehicleID,
	}
}

func toCreateOrderResponse(r *ports.OrderResult) createOrderResponse {
	return createOrderResponse{
		Reference:   r.Reference,
		Status:      r.Status,
		ItemsTotal:  r.ItemsTotal,
		ShippingFee: r.ShippingFee,
		GrandTotal:  r.GrandTotal,
		Delivery:    toDeliveryDetailsResponse(r.Delivery),
		CreatedAt:   formatTimestamp(r.CreatedAt),
		Links:       orderLinks{Self: "/v1/orders/" + r.Reference},
	}
}

func toGetOrderResponse(o *domain.Order) getOrderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:    it.ProductID,
			SellerID:     it.SellerID,
			Name:         it.Name,
			Category:     it.Category,
			Unit:         string(it.Unit),
			Quantity:     it.Quantity,
			SelectedSize: it.SelectedSize,
			UnitPrice:    it.UnitPrice,
			Subtotal:     it.Subtotal,
		})
	}
	return getOrderResponse{
		Reference:   o.Reference,
		BuyerID:     o.BuyerID,
		Status:      string(o.Status),
		Items:       items,
		ItemsTotal:  o.ItemsTotal,
		ShippingFee: o.ShippingFee,
		GrandTotal:  o.GrandTotal,
		Delivery:    toDeliveryDetailsResponse(o.Delivery),
		CreatedAt:   formatTimestamp(o.CreatedAt),
		Links:       orderLinks{Self: "/v1/orders/" + o.Reference},
	}
}

func toListOrdersResponse(r *ports.ListOrdersResult) listOrdersResponse {
	data := make([]orderSummaryResponse, 0, len(r.Items))
	for _, s := range r.Items {
		data = append(data, orderSummaryResponse{
			Reference:   s.Reference,
			BuyerID:     s.BuyerID,
			Status:      s.Status,
			ItemCount:   s.ItemCount,
			GrandTotal:  s.GrandTotal,
			ShippingFee: s.ShippingFee,
			VehicleID:   s.VehicleID,
			CreatedAt:   formatTimestamp(s.CreatedAt),
		})
	}
	return listOrdersResponse{
		Data:       data,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}

func toDeliveryDetailsResponse(d domain.DeliveryDetails) deliveryDetailsResponse {
	perSeller := make([]sellerDeliveryResponse, 0, len(d.PerSeller))
	for _, s := range d.PerSeller {
		perSeller = append(perSeller, sellerDeliveryResponse{
			SellerID:    s.SellerID,
			VehicleID:   s.VehicleID,
			VehicleName: s.VehicleName,
			WeightGrams: s.WeightGrams,
			Trips:       s.Trips,
			Cost:        s.Cost,
		})
	}
	if len(perSeller) == 0 {
		perSeller = nil
	}
	return deliveryDetailsResponse{
		VehicleID:        d.VehicleID,
		VehicleName:      d.VehicleName,
		TotalWeightGrams: d.TotalWeightGrams,
		TotalWeightKg:    d.TotalWeightKg,
		DistanceKm:       d.DistanceKm,
		Trips:            d.Trips,
		TotalCost:        d.TotalCost,
		Warnings:         d.Warnings,
		PerSeller:        perSeller,
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
