package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harvestconnect/delivery-service/internal/api/metrics"
	"github.com/harvestconnect/delivery-service/internal/core/domain"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

type quoteService struct {
	repo   ports.QuoteRepository
	logger zerolog.Logger
}

// NewQuoteService returns a QuoteService that persists served estimates to
// the audit collection.
func NewQuoteService(repo ports.QuoteRepository, logger zerolog.Logger) ports.QuoteService {
	return &quoteService{repo: repo, logger: logger}
}

// Record persists a single quote-audit document.
func (s *quoteService) Record(ctx context.Context, in ports.QuoteRecordInput) error {
	quote := &domain.DeliveryQuote{
		RequestHash:      in.RequestHash,
		VehicleID:        in.VehicleID,
		TotalWeightGrams: in.TotalWeightGrams,
		DistanceKm:       in.DistanceKm,
		Trips:            in.Trips,
		TotalCost:        in.TotalCost,
		CacheHit:         in.CacheHit,
		CreatedAt:        in.QuotedAt,
	}

	if err := s.repo.Insert(ctx, quote); err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record quote: %w", err)
	}

	metrics.QuotesRecordedTotal.Inc()
	s.logger.Debug().
		Str("vehicle", in.VehicleID).
		Bool("cache_hit", in.CacheHit).
		Msg("quote recorded")
	return nil
}
