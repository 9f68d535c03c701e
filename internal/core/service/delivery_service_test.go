package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/harvestconnect/delivery-service/internal/core/delivery"
	"github.com/harvestconnect/delivery-service/internal/core/domain"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubEstimateCache struct {
	data   map[string]*ports.EstimateResult
	getErr error
	setErr error
	sets   int
}

func newStubEstimateCache() *stubEstimateCache {
	return &stubEstimateCache{data: make(map[string]*ports.EstimateResult)}
}

func (c *stubEstimateCache) Get(_ context.Context, key string) (*ports.EstimateResult, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *stubEstimateCache) Set(_ context.Context, key string, result *ports.EstimateResult) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	clone := *result
	c.data[key] = &clone
	return nil
}

type stubDispatcher struct {
	enqueued []ports.QuoteRecordInput
}

func (d *stubDispatcher) Enqueue(input ports.QuoteRecordInput) {
	d.enqueued = append(d.enqueued, input)
}

type stubQuoteRepo struct {
	inserted  []*domain.DeliveryQuote
	insertErr error
	stats     []domain.VehicleQuoteStat
}

func (r *stubQuoteRepo) Insert(_ context.Context, q *domain.DeliveryQuote) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *q
	r.inserted = append(r.inserted, &clone)
	return nil
}

func (r *stubQuoteRepo) StatsByVehicle(_ context.Context) ([]domain.VehicleQuoteStat, error) {
	return r.stats, nil
}

var discardLogger = zerolog.Nop()

func newTestDeliveryService(cache *stubEstimateCache, audit *stubDispatcher) *DeliveryService {
	return NewDeliveryService(delivery.NewCalculator(), cache, audit, &stubQuoteRepo{}, discardLogger)
}

func estimateInput() ports.EstimateInput {
	return ports.EstimateInput{
		Items: []ports.LineItemInput{
			{ProductCategory: "vegetables", Unit: "per_kilo", Quantity: 4.95},
		},
		DistanceKm: 8,
	}
}

// ---------------------------------------------------------------------------
// Estimate tests
// ---------------------------------------------------------------------------

func TestDeliveryService_Estimate_ComputesAndCaches(t *testing.T) {
	cache := newStubEstimateCache()
	audit := &stubDispatcher{}
	svc := newTestDeliveryService(cache, audit)

	result, err := svc.Estimate(context.Background(), estimateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CacheHit {
		t.Error("first estimate must not be a cache hit")
	}
	if result.Calculation.VehicleID != domain.VehicleMotorcycle {
		t.Errorf("vehicle = %q, want motorcycle", result.Calculation.VehicleID)
	}
	if result.Calculation.TotalCost != 94 {
		t.Errorf("total cost = %v, want 94", result.Calculation.TotalCost)
	}
	if len(result.Options) == 0 {
		t.Error("expected a populated options menu")
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", cache.sets)
	}
	if len(audit.enqueued) != 1 {
		t.Fatalf("expected 1 audit quote, got %d", len(audit.enqueued))
	}
	if audit.enqueued[0].CacheHit {
		t.Error("audit record must mark a computed estimate as a miss")
	}
}

func TestDeliveryService_Estimate_SecondCallHitsCache(t *testing.T) {
	cache := newStubEstimateCache()
	audit := &stubDispatcher{}
	svc := newTestDeliveryService(cache, audit)

	first, err := svc.Estimate(context.Background(), estimateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Estimate(context.Background(), estimateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.CacheHit {
		t.Error("second identical estimate should hit the cache")
	}
	if second.Calculation.TotalCost != first.Calculation.TotalCost {
		t.Errorf("cached cost %v differs from computed %v",
			second.Calculation.TotalCost, first.Calculation.TotalCost)
	}
	if len(audit.enqueued) != 2 {
		t.Errorf("both estimates must be audited, got %d", len(audit.enqueued))
	}
	if !audit.enqueued[1].CacheHit {
		t.Error("second audit record should carry the cache-hit flag")
	}
}

func TestDeliveryService_Estimate_CacheFailureDegradesToCompute(t *testing.T) {
	cache := newStubEstimateCache()
	cache.getErr = errors.New("redis down")
	svc := newTestDeliveryService(cache, &stubDispatcher{})

	result, err := svc.Estimate(context.Background(), estimateInput())
	if err != nil {
		t.Fatalf("estimate must survive a cache outage, got %v", err)
	}
	if result.Calculation.TotalCost != 94 {
		t.Errorf("total cost = %v, want 94", result.Calculation.TotalCost)
	}
}

func TestDeliveryService_Estimate_DefaultsDistance(t *testing.T) {
	svc := newTestDeliveryService(newStubEstimateCache(), &stubDispatcher{})

	input := estimateInput()
	input.DistanceKm = 0
	result, err := svc.Estimate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Calculation.DistanceKm != delivery.DefaultDistanceKm {
		t.Errorf("distance = %v, want default %v", result.Calculation.DistanceKm, delivery.DefaultDistanceKm)
	}
}

func TestDeliveryService_Estimate_UnknownVehicle(t *testing.T) {
	svc := newTestDeliveryService(newStubEstimateCache(), &stubDispatcher{})

	input := estimateInput()
	input.VehicleID = "spaceship"
	_, err := svc.Estimate(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidVehicleType) {
		t.Fatalf("expected ErrInvalidVehicleType, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Multi-seller and catalogue tests
// ---------------------------------------------------------------------------

func TestDeliveryService_MultiSellerEstimate(t *testing.T) {
	svc := newTestDeliveryService(newStubEstimateCache(), &stubDispatcher{})

	result, err := svc.MultiSellerEstimate(context.Background(), ports.MultiSellerEstimateInput{
		Groups: []ports.SellerGroupEstimateInput{
			{SellerID: "a", Items: []ports.LineItemInput{{ProductCategory: "vegetables", Unit: "per_kilo", Quantity: 4.95}}, DistanceKm: 8},
			{SellerID: "b", Items: []ports.LineItemInput{{ProductCategory: "fruits", Unit: "per_kilo", Quantity: 150}}},
		},
		DistanceKm: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SellerCount != 2 {
		t.Errorf("seller count = %d, want 2", result.SellerCount)
	}
	if result.TotalCost != 284 {
		t.Errorf("total cost = %v, want 284", result.TotalCost)
	}
}

func TestDeliveryService_Vehicles(t *testing.T) {
	svc := newTestDeliveryService(newStubEstimateCache(), &stubDispatcher{})

	vehicles := svc.Vehicles()
	if len(vehicles) != 7 {
		t.Fatalf("expected 7 fleet entries, got %d", len(vehicles))
	}
	if vehicles[0].ID != domain.VehicleMotorcycle || vehicles[0].MaxWeightKg != 20 {
		t.Errorf("first entry wrong: %+v", vehicles[0])
	}
	if vehicles[len(vehicles)-1].ID != domain.VehicleExtraLarge12 {
		t.Errorf("last entry = %q, want extra_large_12t", vehicles[len(vehicles)-1].ID)
	}
}

// ---------------------------------------------------------------------------
// Quote service tests
// ---------------------------------------------------------------------------

func TestQuoteService_Record(t *testing.T) {
	repo := &stubQuoteRepo{}
	svc := NewQuoteService(repo, discardLogger)

	err := svc.Record(context.Background(), ports.QuoteRecordInput{
		RequestHash: "abc123",
		VehicleID:   domain.VehicleSedan,
		TotalCost:   190,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0].RequestHash != "abc123" || repo.inserted[0].VehicleID != domain.VehicleSedan {
		t.Errorf("stored quote wrong: %+v", repo.inserted[0])
	}
}

func TestQuoteService_Record_RepoError(t *testing.T) {
	repo := &stubQuoteRepo{insertErr: errors.New("mongo down")}
	svc := NewQuoteService(repo, discardLogger)

	err := svc.Record(context.Background(), ports.QuoteRecordInput{RequestHash: "x"})
	if err == nil {
		t.Fatal("expected error when the repo fails")
	}
}
