package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harvestconnect/delivery-service/internal/core/delivery"
	"github.com/harvestconnect/delivery-service/internal/core/domain"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	byReference map[string]*domain.Order
	createErr   error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byReference: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *o
	r.byReference[o.Reference] = &clone
	return nil
}

func (r *stubOrderRepo) FindByReference(_ context.Context, reference string) (*domain.Order, error) {
	o, ok := r.byReference[reference]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubOrderRepo) List(_ context.Context, f ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	var matched []*domain.Order
	for _, o := range r.byReference {
		if f.BuyerID != "" && o.BuyerID != f.BuyerID {
			continue
		}
		if f.SellerID != "" {
			found := false
			for _, it := range o.Items {
				if it.SellerID == f.SellerID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if !f.DateFrom.IsZero() && o.CreatedAt.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && o.CreatedAt.After(f.DateTo) {
			continue
		}
		clone := *o
		matched = append(matched, &clone)
	}

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return []*domain.Order{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Product, error) {
	out := make(map[string]*domain.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			clone := *p
			out[id] = &clone
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func tomatoProduct() *domain.Product {
	return &domain.Product{
		ID:             "prod_tomato",
		SellerID:       "seller_a",
		Name:           "Native Tomatoes",
		Category:       "vegetables",
		Unit:           domain.UnitPerKilo,
		Price:          80,
		AvgWeightGrams: 0,
	}
}

func riceProduct() *domain.Product {
	return &domain.Product{
		ID:       "prod_rice",
		SellerID: "seller_b",
		Name:     "Dinorado Rice",
		Category: "grains",
		Unit:     domain.UnitPerKilo,
		Price:    55,
	}
}

func newTestOrderService(orders *stubOrderRepo, products *stubProductRepo) *OrderService {
	return NewOrderService(orders, products, delivery.NewCalculator(), discardLogger)
}

func singleSellerInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		BuyerID: "buyer_1",
		Groups: []ports.SellerGroupInput{
			{SellerID: "seller_a", Items: []ports.OrderItemInput{{ProductID: "prod_tomato", Quantity: 4.95}}},
		},
		DistanceKm: 8,
	}
}

// ---------------------------------------------------------------------------
// CreateOrder tests
// ---------------------------------------------------------------------------

func TestOrderService_Create_SingleSeller(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	result, err := svc.CreateOrder(context.Background(), singleSellerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.Reference, "HC-") {
		t.Errorf("reference format wrong: %s", result.Reference)
	}
	if result.Status != string(domain.OrderPending) {
		t.Errorf("status = %q, want pending", result.Status)
	}
	// 4.95 kg * 80/kg
	if result.ItemsTotal != 396 {
		t.Errorf("items total = %v, want 396", result.ItemsTotal)
	}
	// Motorcycle over 8 km: 49 + 45.
	if result.ShippingFee != 94 {
		t.Errorf("shipping fee = %v, want 94", result.ShippingFee)
	}
	if result.GrandTotal != 490 {
		t.Errorf("grand total = %v, want 490", result.GrandTotal)
	}
	if result.Delivery.VehicleID != domain.VehicleMotorcycle {
		t.Errorf("vehicle = %q, want motorcycle", result.Delivery.VehicleID)
	}

	stored := repo.byReference[result.Reference]
	if stored == nil {
		t.Fatal("order was not persisted")
	}
	if len(stored.Items) != 1 || stored.Items[0].SellerID != "seller_a" {
		t.Errorf("stored items wrong: %+v", stored.Items)
	}
}

func TestOrderService_Create_MultiSellerShipsPerSeller(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct(), riceProduct()))

	result, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		BuyerID: "buyer_1",
		Groups: []ports.SellerGroupInput{
			{SellerID: "seller_a", Items: []ports.OrderItemInput{{ProductID: "prod_tomato", Quantity: 4.95}}, DistanceKm: 8},
			{SellerID: "seller_b", Items: []ports.OrderItemInput{{ProductID: "prod_rice", Quantity: 150}}},
		},
		DistanceKm: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Delivery.VehicleID != "" {
		t.Errorf("multi-seller order must not pin a single vehicle, got %q", result.Delivery.VehicleID)
	}
	if len(result.Delivery.PerSeller) != 2 {
		t.Fatalf("expected 2 per-seller shipments, got %d", len(result.Delivery.PerSeller))
	}
	// seller_a motorcycle 94 + seller_b sedan 190.
	if result.ShippingFee != 284 {
		t.Errorf("shipping fee = %v, want 284", result.ShippingFee)
	}
	if result.Delivery.PerSeller[1].VehicleID != domain.VehicleSedan {
		t.Errorf("seller_b vehicle = %q, want sedan", result.Delivery.PerSeller[1].VehicleID)
	}
}

func TestOrderService_Create_HonoursRequestedVehicle(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	input := singleSellerInput()
	input.VehicleID = domain.VehicleSedan
	result, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Delivery.VehicleID != domain.VehicleSedan {
		t.Errorf("vehicle = %q, want requested sedan", result.Delivery.VehicleID)
	}
}

func TestOrderService_Create_EmptyOrder(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), newStubProductRepo())

	_, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{BuyerID: "buyer_1"})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	_, err = svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		BuyerID: "buyer_1",
		Groups:  []ports.SellerGroupInput{{SellerID: "seller_a"}},
	})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder for an empty group, got %v", err)
	}
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), newStubProductRepo(tomatoProduct()))

	input := singleSellerInput()
	input.Groups[0].Items = append(input.Groups[0].Items, ports.OrderItemInput{ProductID: "prod_ghost", Quantity: 1})
	_, err := svc.CreateOrder(context.Background(), input)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "prod_ghost") {
		t.Errorf("error should name the missing product, got %q", err)
	}
}

func TestOrderService_Create_InvalidVehicle(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), newStubProductRepo(tomatoProduct()))

	input := singleSellerInput()
	input.VehicleID = "spaceship"
	_, err := svc.CreateOrder(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidVehicleType) {
		t.Fatalf("expected ErrInvalidVehicleType, got %v", err)
	}
}

func TestOrderService_Create_RepoError(t *testing.T) {
	repo := newStubOrderRepo()
	repo.createErr = errors.New("db unavailable")
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	_, err := svc.CreateOrder(context.Background(), singleSellerInput())
	if err == nil {
		t.Fatal("expected error when the repo fails")
	}
}

// ---------------------------------------------------------------------------
// GetOrder / ListOrders tests
// ---------------------------------------------------------------------------

func TestOrderService_Get(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	created, err := svc.CreateOrder(context.Background(), singleSellerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := svc.GetOrder(context.Background(), created.Reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Reference != created.Reference || order.BuyerID != "buyer_1" {
		t.Errorf("fetched order wrong: %+v", order)
	}

	if _, err := svc.GetOrder(context.Background(), "HC-DEADBEEF"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_List_PaginationDefaults(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOrder(context.Background(), singleSellerInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Page != 1 || result.Limit != defaultListLimit {
		t.Errorf("defaults not applied: page=%d limit=%d", result.Page, result.Limit)
	}
	if result.Total != 3 || len(result.Items) != 3 {
		t.Errorf("expected 3 orders, got total=%d items=%d", result.Total, len(result.Items))
	}
	if result.TotalPages != 1 {
		t.Errorf("total pages = %d, want 1", result.TotalPages)
	}
}

func TestOrderService_List_LimitCapped(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), newStubProductRepo())

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Limit: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Limit != maxListLimit {
		t.Errorf("limit = %d, want capped at %d", result.Limit, maxListLimit)
	}
}

func TestOrderService_List_FilterByBuyer(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	if _, err := svc.CreateOrder(context.Background(), singleSellerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := singleSellerInput()
	other.BuyerID = "buyer_2"
	if _, err := svc.CreateOrder(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{BuyerID: "buyer_2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 {
		t.Fatalf("expected 1 order for buyer_2, got %d", result.Total)
	}
	if result.Items[0].BuyerID != "buyer_2" {
		t.Errorf("filter leaked another buyer's order: %+v", result.Items[0])
	}
}

func TestOrderService_List_DateWindow(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, newStubProductRepo(tomatoProduct()))

	created, err := svc.CreateOrder(context.Background(), singleSellerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{
		DateFrom: created.CreatedAt.Add(-time.Minute),
		DateTo:   created.CreatedAt.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("expected the order inside the window, got %d", result.Total)
	}

	result, err = svc.ListOrders(context.Background(), ports.ListOrdersInput{
		DateFrom: created.CreatedAt.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("expected no orders after the window, got %d", result.Total)
	}
}
