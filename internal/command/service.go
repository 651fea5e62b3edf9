package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quorumdb/internal/metrics"
	"quorumdb/internal/replication"
	"quorumdb/internal/storage"
)

// Coordinator is the slice of the replication layer the write path needs.
type Coordinator interface {
	Replicate(ctx context.Context, key, value string) replication.Outcome
}

// WriteResult is the client-visible shape of an accepted write.
type WriteResult struct {
	Key                string
	Value              string
	Quorum             int
	AsyncConfirmations int
	FailedSyncPeers    []string
	Warning            string
}

// Service carries the node's role and dispatches the five operations.
// Writes are leader-only; replicated intake is follower-only.
type Service struct {
	storageService *storage.Service
	coordinator    Coordinator
	leader         bool
	quorum         int
}

func NewCommandService(storageSvc *storage.Service, coordinator Coordinator, leader bool, quorum int) *Service {
	slog.Info("command service initialized", "leader", leader, "quorum", quorum)
	return &Service{
		storageService: storageSvc,
		coordinator:    coordinator,
		leader:         leader,
		quorum:         quorum,
	}
}

func (s *Service) IsLeader() bool { return s.leader }

// Write commits locally, then replicates. The local commit is authoritative
// and is never rolled back, even when the quorum verdict is negative.
func (s *Service) Write(ctx context.Context, key, value string) (*WriteResult, error) {
	start := time.Now()
	metrics.CommandsInFlight.Inc()
	defer metrics.CommandsInFlight.Dec()
	defer func() {
		metrics.CommandDuration.WithLabelValues("write").Observe(time.Since(start).Seconds())
	}()

	if key == "" {
		metrics.CommandsTotal.WithLabelValues("write", "invalid").Inc()
		return nil, fmt.Errorf("%w: key is required", ErrInvalidCommand)
	}

	if !s.leader {
		metrics.CommandsTotal.WithLabelValues("write", "rejected").Inc()
		return nil, fmt.Errorf("%w: only the leader accepts writes", ErrNotLeader)
	}

	s.storageService.Set(key, value)

	out := s.coordinator.Replicate(ctx, key, value)
	if !out.QuorumMet {
		metrics.CommandsTotal.WithLabelValues("write", "quorum_unmet").Inc()
		slog.Warn("write rejected, quorum not met",
			"key", key,
			"failed_sync_peers", out.FailedSyncPeers,
			"async_confirmations", out.AsyncConfirmations,
		)
		return nil, fmt.Errorf("%w: required sync followers unavailable: %v", ErrQuorumUnmet, out.FailedSyncPeers)
	}

	res := &WriteResult{
		Key:                key,
		Value:              value,
		Quorum:             s.quorum,
		AsyncConfirmations: out.AsyncConfirmations,
		FailedSyncPeers:    out.FailedSyncPeers,
	}
	if len(out.FailedSyncPeers) > 0 {
		res.Warning = fmt.Sprintf("some sync followers failed: %v", out.FailedSyncPeers)
		slog.Warn("write accepted with degraded sync tier", "key", key, "failed_sync_peers", out.FailedSyncPeers)
	}

	metrics.CommandsTotal.WithLabelValues("write", "success").Inc()
	slog.Debug("write success", "key", key, "async_confirmations", out.AsyncConfirmations)
	return res, nil
}

func (s *Service) Read(key string) (string, error) {
	if key == "" {
		metrics.CommandsTotal.WithLabelValues("read", "invalid").Inc()
		return "", fmt.Errorf("%w: key is required", ErrInvalidCommand)
	}

	value, ok := s.storageService.Get(key)
	if !ok {
		metrics.CommandsTotal.WithLabelValues("read", "not_found").Inc()
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	metrics.CommandsTotal.WithLabelValues("read", "success").Inc()
	return value, nil
}

// Replicate is the follower intake: apply unconditionally, last write
// received wins. No ordering check, no deduplication.
func (s *Service) Replicate(key, value string) error {
	if s.leader {
		metrics.CommandsTotal.WithLabelValues("replicate", "rejected").Inc()
		return fmt.Errorf("%w: leader does not accept replicated writes", ErrNotFollower)
	}

	if key == "" {
		metrics.CommandsTotal.WithLabelValues("replicate", "invalid").Inc()
		return fmt.Errorf("%w: key is required", ErrInvalidCommand)
	}

	s.storageService.Set(key, value)
	metrics.CommandsTotal.WithLabelValues("replicate", "success").Inc()
	slog.Debug("applied replicated write", "key", key)
	return nil
}

func (s *Service) Dump() map[string]string {
	metrics.CommandsTotal.WithLabelValues("dump", "success").Inc()
	return s.storageService.Dump()
}
