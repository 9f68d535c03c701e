package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

type recordingQuoteService struct {
	mu       sync.Mutex
	recorded []ports.QuoteRecordInput
}

func (s *recordingQuoteService) Record(_ context.Context, input ports.QuoteRecordInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, input)
	return nil
}

func (s *recordingQuoteService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recorded)
}

func TestDispatcher_DeliversToWorkers(t *testing.T) {
	svc := &recordingQuoteService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ports.QuoteRecordInput{RequestHash: string(rune('a' + i))})
	}

	deadline := time.After(2 * time.Second)
	for svc.count() < 10 {
		select {
		case <-deadline:
			t.Fatalf("only %d of 10 quotes recorded before timeout", svc.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_SameHashSameWorker(t *testing.T) {
	d := NewDispatcher(4, &recordingQuoteService{}, zerolog.Nop())

	first := d.shardIndex("abc123")
	for i := 0; i < 20; i++ {
		if got := d.shardIndex("abc123"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingQuoteService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("worker count = %d, want %d", len(d.workers), defaultWorkers)
	}
}
