package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/harvestconnect/delivery-service/internal/api/metrics"
	"github.com/harvestconnect/delivery-service/internal/core/delivery"
	"github.com/harvestconnect/delivery-service/internal/core/domain"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

// EstimateCache abstracts the estimate result cache (Redis). Get returns
// (nil, nil) on a miss.
type EstimateCache interface {
	Get(ctx context.Context, key string) (*ports.EstimateResult, error)
	Set(ctx context.Context, key string, result *ports.EstimateResult) error
}

// QuoteDispatcher enqueues served estimates onto the async audit pipeline.
type QuoteDispatcher interface {
	Enqueue(input ports.QuoteRecordInput)
}

type DeliveryService struct {
	calc   *delivery.Calculator
	cache  EstimateCache
	audit  QuoteDispatcher
	quotes ports.QuoteRepository
	logger zerolog.Logger
}

func NewDeliveryService(
	calc *delivery.Calculator,
	cache EstimateCache,
	audit QuoteDispatcher,
	quotes ports.QuoteRepository,
	logger zerolog.Logger,
) *DeliveryService {
	return &DeliveryService{calc: calc, cache: cache, audit: audit, quotes: quotes, logger: logger}
}

// Estimate computes (or replays from cache) a delivery cost estimate plus the
// ranked vehicle options menu, and enqueues an audit quote either way.
func (s *DeliveryService) Estimate(ctx context.Context, input ports.EstimateInput) (*ports.EstimateResult, error) {
	start := time.Now()

	distance := input.DistanceKm
	if distance <= 0 {
		distance = delivery.DefaultDistanceKm
	}
	input.DistanceKm = distance

	key := estimateKey(input)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("estimate cache read failed, computing")
	} else if cached != nil {
		cached.CacheHit = true
		metrics.EstimatesServedTotal.WithLabelValues(cached.Calculation.VehicleID, "hit").Inc()
		s.enqueueQuote(key, &cached.Calculation, true)
		return cached, nil
	}

	weight := s.calc.OrderWeight(toLineItems(input.Items))

	calc, err := s.calc.DeliveryCost(weight, distance, input.VehicleID)
	if err != nil {
		return nil, err
	}
	options, err := s.calc.Options(weight, distance)
	if err != nil {
		return nil, err
	}

	result := &ports.EstimateResult{Calculation: *calc, Options: options}

	if err := s.cache.Set(ctx, key, result); err != nil {
		s.logger.Warn().Err(err).Msg("estimate cache write failed")
	}

	metrics.EstimatesServedTotal.WithLabelValues(calc.VehicleID, "miss").Inc()
	metrics.CalculationDuration.WithLabelValues("estimate").Observe(time.Since(start).Seconds())

	s.enqueueQuote(key, calc, false)

	s.logger.Info().
		Str("vehicle", calc.VehicleID).
		Float64("weight_grams", calc.TotalWeightGrams).
		Float64("distance_km", distance).
		Float64("total_cost", calc.TotalCost).
		Msg("estimate served")

	return result, nil
}

// MultiSellerEstimate computes independent per-seller shipments and their
// aggregate. Results are not cached: seller groupings rarely repeat.
func (s *DeliveryService) MultiSellerEstimate(ctx context.Context, input ports.MultiSellerEstimateInput) (*delivery.MultiSellerResult, error) {
	start := time.Now()

	distance := input.DistanceKm
	if distance <= 0 {
		distance = delivery.DefaultDistanceKm
	}

	groups := make([]delivery.SellerGroup, 0, len(input.Groups))
	for _, g := range input.Groups {
		groups = append(groups, delivery.SellerGroup{
			SellerID:   g.SellerID,
			Items:      toLineItems(g.Items),
			DistanceKm: g.DistanceKm,
		})
	}

	result, err := s.calc.MultiSellerDelivery(groups, distance)
	if err != nil {
		return nil, err
	}

	metrics.CalculationDuration.WithLabelValues("multi_seller_estimate").Observe(time.Since(start).Seconds())
	return result, nil
}

// Vehicles returns the fleet catalogue for the client vehicle picker.
func (s *DeliveryService) Vehicles() []ports.VehicleInfo {
	fleet := s.calc.Fleet()
	out := make([]ports.VehicleInfo, 0, len(fleet))
	for _, v := range fleet {
		out = append(out, ports.VehicleInfo{
			ID:          v.ID,
			DisplayName: v.DisplayName,
			MaxWeightKg: v.MaxWeightGrams / 1000,
			BaseFee:     v.Pricing.BaseFee(),
		})
	}
	return out
}

// QuoteStats aggregates the audit trail per vehicle class.
func (s *DeliveryService) QuoteStats(ctx context.Context) ([]domain.VehicleQuoteStat, error) {
	return s.quotes.StatsByVehicle(ctx)
}

func (s *DeliveryService) enqueueQuote(key string, calc *delivery.Calculation, cacheHit bool) {
	s.audit.Enqueue(ports.QuoteRecordInput{
		RequestHash:      key,
		VehicleID:        calc.VehicleID,
		TotalWeightGrams: calc.TotalWeightGrams,
		DistanceKm:       calc.DistanceKm,
		Trips:            calc.TripsNeeded,
		TotalCost:        calc.TotalCost,
		CacheHit:         cacheHit,
		QuotedAt:         time.Now().UTC(),
	})
}

// estimateKey derives a deterministic cache key from the canonical request.
func estimateKey(input ports.EstimateInput) string {
	payload, err := json.Marshal(input)
	if err != nil {
		// Inputs are plain structs; Marshal cannot realistically fail.
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func toLineItems(items []ports.LineItemInput) []delivery.LineItem {
	out := make([]delivery.LineItem, 0, len(items))
	for _, it := range items {
		variants := make([]domain.SizeVariant, 0, len(it.SizeVariants))
		for _, v := range it.SizeVariants {
			variants = append(variants, domain.SizeVariant{Size: v.Size, AvgWeightGrams: v.AvgWeightGrams})
		}
		out = append(out, delivery.LineItem{
			ProductCategory: it.ProductCategory,
			Unit:            domain.UnitOfMeasure(it.Unit),
			Quantity:        it.Quantity,
			HasSizeVariants: it.HasSizeVariants,
			SizeVariants:    variants,
			SelectedSize:    it.SelectedSize,
			AvgWeightGrams:  it.AvgWeightGrams,
		})
	}
	return out
}
