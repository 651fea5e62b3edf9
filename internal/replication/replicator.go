package replication

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quorumdb/internal/metrics"
	kveventspb "quorumdb/internal/transport/gen/kvevents"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Tier labels a replication attempt for logging and metrics.
type Tier string

const (
	TierFlat  Tier = "flat"
	TierSync  Tier = "sync"
	TierAsync Tier = "async"
)

// Replicator sends one key/value write to a single peer. Every failure mode
// collapses to false; nothing propagates past this boundary.
type Replicator interface {
	Replicate(ctx context.Context, peer, key, value string, timeout time.Duration, tier Tier) bool
}

// PeerReplicator is the gRPC implementation. Client connections are cached
// per peer address.
type PeerReplicator struct {
	delayer Delayer

	mu      sync.RWMutex
	clients map[string]kveventspb.KVServiceClient
}

func NewPeerReplicator(delayer Delayer) *PeerReplicator {
	if delayer == nil {
		delayer = FixedDelayer(0)
	}
	return &PeerReplicator{
		delayer: delayer,
		clients: make(map[string]kveventspb.KVServiceClient),
	}
}

func (r *PeerReplicator) Replicate(ctx context.Context, peer, key, value string, timeout time.Duration, tier Tier) bool {
	start := time.Now()
	ok := r.replicate(ctx, peer, key, value, timeout, tier)

	metrics.ReplicationAttemptDuration.WithLabelValues(string(tier)).Observe(time.Since(start).Seconds())
	if ok {
		metrics.ReplicationAttemptsTotal.WithLabelValues(string(tier), "ack").Inc()
	} else {
		metrics.ReplicationAttemptsTotal.WithLabelValues(string(tier), "fail").Inc()
	}
	return ok
}

func (r *PeerReplicator) replicate(ctx context.Context, peer, key, value string, timeout time.Duration, tier Tier) bool {
	// Simulated network latency comes first, exactly like a slow wire: the
	// per-attempt timeout below only bounds the RPC itself.
	select {
	case <-time.After(r.delayer.Delay()):
	case <-ctx.Done():
		slog.Warn("replication attempt abandoned before send", "peer", peer, "tier", tier, "error", ctx.Err())
		return false
	}

	client, err := r.client(peer)
	if err != nil {
		slog.Warn("failed to reach follower", "peer", peer, "tier", tier, "error", err)
		return false
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := client.Replicate(callCtx, &kveventspb.ReplicateRequest{Key: key, Value: value})
	if err != nil {
		slog.Warn("replication attempt failed", "peer", peer, "tier", tier, "error", err)
		return false
	}
	if !resp.GetOk() {
		slog.Warn("follower rejected replicated write", "peer", peer, "tier", tier)
		return false
	}

	slog.Debug("replication attempt acknowledged", "peer", peer, "tier", tier, "key", key)
	return true
}

// client returns the cached gRPC client for a peer, dialing on first use.
func (r *PeerReplicator) client(addr string) (kveventspb.KVServiceClient, error) {
	r.mu.RLock()
	client, ok := r.clients[addr]
	r.mu.RUnlock()
	if ok {
		return client, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[addr]; ok {
		return client, nil
	}

	conn, err := dialPeer(addr)
	if err != nil {
		return nil, err
	}

	client = kveventspb.NewKVServiceClient(conn)
	r.clients[addr] = client
	return client, nil
}

func dialPeer(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithKeepaliveParams(keepalive.ClientParameters{
		Time:                30 * time.Second,
		Timeout:             5 * time.Second,
		PermitWithoutStream: true,
	}))
}
