package replication

import (
	"context"
	"testing"
	"time"
)

func TestPeerReplicator_CanceledBeforeSend(t *testing.T) {
	r := NewPeerReplicator(FixedDelayer(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	ok := r.Replicate(ctx, "localhost:1", "k", "v", time.Second, TierSync)
	if ok {
		t.Fatal("expected failure on canceled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("canceled attempt took %v; should not have waited out the delay", elapsed)
	}
}

func TestPeerReplicator_UnreachablePeer(t *testing.T) {
	r := NewPeerReplicator(FixedDelayer(0))

	ok := r.Replicate(context.Background(), "127.0.0.1:1", "k", "v", 500*time.Millisecond, TierAsync)
	if ok {
		t.Fatal("expected failure against an unreachable peer")
	}
}

func TestPeerReplicator_ReusesClient(t *testing.T) {
	r := NewPeerReplicator(nil)

	first, err := r.client("127.0.0.1:1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := r.client("127.0.0.1:1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Error("expected the cached client on the second lookup")
	}
}
