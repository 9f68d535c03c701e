package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/harvestconnect/delivery-service/internal/api/metrics"
	"github.com/harvestconnect/delivery-service/internal/core/delivery"
	"github.com/harvestconnect/delivery-service/internal/core/domain"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	calc     *delivery.Calculator
	logger   zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	calc *delivery.Calculator,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, products: products, calc: calc, logger: logger}
}

// CreateOrder loads product weight metadata, runs the delivery engine (one
// shipment per seller), and persists the order with the full delivery record
// embedded.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if len(input.Groups) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, g := range input.Groups {
		if len(g.Items) == 0 {
			return nil, fmt.Errorf("%w: seller %s", domain.ErrEmptyOrder, g.SellerID)
		}
	}

	distance := input.DistanceKm
	if distance <= 0 {
		distance = delivery.DefaultDistanceKm
	}

	products, err := s.loadProducts(ctx, input.Groups)
	if err != nil {
		return nil, err
	}

	var orderItems []domain.OrderItem
	var itemsTotal float64
	groups := make([]delivery.SellerGroup, 0, len(input.Groups))
	for _, g := range input.Groups {
		lineItems := make([]delivery.LineItem, 0, len(g.Items))
		for _, it := range g.Items {
			p := products[it.ProductID]
			lineItems = append(lineItems, delivery.LineItem{
				ProductCategory: p.Category,
				Unit:            p.Unit,
				Quantity:        it.Quantity,
				HasSizeVariants: p.HasSizeVariants,
				SizeVariants:    p.SizeVariants,
				SelectedSize:    it.SelectedSize,
				AvgWeightGrams:  p.AvgWeightGrams,
			})

			subtotal := p.Price * it.Quantity
			itemsTotal += subtotal
			orderItems = append(orderItems, domain.OrderItem{
				ProductID:    p.ID,
				SellerID:     p.SellerID,
				Name:         p.Name,
				Category:     p.Category,
				Unit:         p.Unit,
				Quantity:     it.Quantity,
				SelectedSize: it.SelectedSize,
				UnitPrice:    p.Price,
				Subtotal:     subtotal,
			})
		}
		groups = append(groups, delivery.SellerGroup{
			SellerID:   g.SellerID,
			Items:      lineItems,
			DistanceKm: g.DistanceKm,
		})
	}

	details, vehicleLabel, err := s.planDelivery(groups, distance, input.VehicleID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Reference:   generateOrderReference(),
		BuyerID:     input.BuyerID,
		Items:       orderItems,
		ItemsTotal:  itemsTotal,
		ShippingFee: details.TotalCost,
		GrandTotal:  itemsTotal + details.TotalCost,
		Delivery:    *details,
		Status:      domain.OrderPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(vehicleLabel).Inc()
	s.logger.Info().
		Str("reference", order.Reference).
		Str("buyer_id", order.BuyerID).
		Float64("shipping_fee", order.ShippingFee).
		Int("trips", order.Delivery.Trips).
		Msg("order created")

	return &ports.OrderResult{
		Reference:   order.Reference,
		Status:      string(order.Status),
		ItemsTotal:  order.ItemsTotal,
		ShippingFee: order.ShippingFee,
		GrandTotal:  order.GrandTotal,
		Delivery:    order.Delivery,
		CreatedAt:   order.CreatedAt,
	}, nil
}

// GetOrder retrieves an order by its customer-facing reference.
func (s *OrderService) GetOrder(ctx context.Context, reference string) (*domain.Order, error) {
	return s.orders.FindByReference(ctx, reference)
}

// ListOrders returns a page of order summaries matching the filter.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	orders, total, err := s.orders.List(ctx, ports.ListOrdersFilter{
		BuyerID:  input.BuyerID,
		SellerID: input.SellerID,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.OrderSummary, 0, len(orders))
	for _, o := range orders {
		items = append(items, ports.OrderSummary{
			Reference:   o.Reference,
			BuyerID:     o.BuyerID,
			Status:      string(o.Status),
			ItemCount:   len(o.Items),
			GrandTotal:  o.GrandTotal,
			ShippingFee: o.ShippingFee,
			VehicleID:   o.Delivery.VehicleID,
			CreatedAt:   o.CreatedAt,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// loadProducts fetches every referenced product and fails on the first
// missing id.
func (s *OrderService) loadProducts(ctx context.Context, groups []ports.SellerGroupInput) (map[string]*domain.Product, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, it := range g.Items {
			if _, dup := seen[it.ProductID]; dup {
				continue
			}
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
	}
	return products, nil
}

// planDelivery runs the engine: a single shipment for one-seller orders, an
// independent shipment per seller otherwise.
func (s *OrderService) planDelivery(groups []delivery.SellerGroup, distance float64, vehicleID string) (*domain.DeliveryDetails, string, error) {
	if len(groups) == 1 {
		g := groups[0]
		if g.DistanceKm > 0 {
			distance = g.DistanceKm
		}
		calc, err := s.calc.DeliveryCost(s.calc.OrderWeight(g.Items), distance, vehicleID)
		if err != nil {
			return nil, "", err
		}
		return singleDeliveryDetails(calc), calc.VehicleID, nil
	}

	result, err := s.calc.MultiSellerDelivery(groups, distance)
	if err != nil {
		return nil, "", err
	}
	return multiSellerDetails(result, distance), "multi_seller", nil
}

func singleDeliveryDetails(calc *delivery.Calculation) *domain.DeliveryDetails {
	return &domain.DeliveryDetails{
		VehicleID:        calc.VehicleID,
		VehicleName:      calc.VehicleDisplayName,
		TotalWeightGrams: calc.TotalWeightGrams,
		TotalWeightKg:    calc.TotalWeightKg,
		DistanceKm:       calc.DistanceKm,
		Trips:            calc.TripsNeeded,
		UtilizationPct:   calc.WeightUtilizationPct,
		BaseFee:          calc.BaseFee,
		DistanceFee:      calc.DistanceFee,
		CostPerTrip:      calc.CostPerTrip,
		TotalCost:        calc.TotalCost,
		Warnings:         calc.Warnings,
		Recommendations:  calc.Recommendations,
	}
}

func multiSellerDetails(result *delivery.MultiSellerResult, distance float64) *domain.DeliveryDetails {
	details := &domain.DeliveryDetails{
		TotalWeightGrams: result.TotalWeightGrams,
		TotalWeightKg:    fmt.Sprintf("%.1f", result.TotalWeightGrams/1000),
		DistanceKm:       distance,
		Trips:            result.MaxTrips,
		TotalCost:        result.TotalCost,
		Warnings:         result.Warnings,
	}
	for _, sc := range result.PerSeller {
		details.PerSeller = append(details.PerSeller, domain.SellerDelivery{
			SellerID:    sc.SellerID,
			VehicleID:   sc.VehicleID,
			VehicleName: sc.VehicleDisplayName,
			WeightGrams: sc.TotalWeightGrams,
			Trips:       sc.TripsNeeded,
			Cost:        sc.TotalCost,
		})
	}
	return details
}

// generateOrderReference returns a unique order reference in the format HC-XXXXXXXX.
func generateOrderReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("HC-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("HC-%08X", b)
}
