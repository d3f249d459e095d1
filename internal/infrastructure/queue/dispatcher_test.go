package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

type recordingAuditService struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	done    chan struct{}
}

func (s *recordingAuditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func (s *recordingAuditService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func TestDispatcher_ProcessesEntries(t *testing.T) {
	svc := &recordingAuditService{done: make(chan struct{}, 16)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Record(domain.AuditEntry{
			ActorID:    "u1",
			Action:     domain.AuditCatCreated,
			ResourceID: "c1",
			Timestamp:  time.Now(),
		})
	}

	deadline := time.After(2 * time.Second)
	for svc.count() < 5 {
		select {
		case <-svc.done:
		case <-deadline:
			t.Fatalf("expected 5 entries, got %d", svc.count())
		}
	}
}

func TestDispatcher_ShardIsStablePerActor(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditService{done: make(chan struct{}, 1)}, zerolog.Nop())

	first := d.shardIndex("u1")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("u1"); got != first {
			t.Fatalf("shard changed: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_RecordNeverBlocks(t *testing.T) {
	// Workers are never started, so channels fill up and overflow entries
	// must be dropped instead of blocking the caller.
	d := NewDispatcher(1, &recordingAuditService{done: make(chan struct{}, 1)}, zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(domain.AuditEntry{ActorID: "u1", Action: domain.AuditCatCreated})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditService{done: make(chan struct{}, 1)}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
