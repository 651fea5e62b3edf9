package replication

import (
	"context"
	"log/slog"
	"time"

	"quorumdb/internal/metrics"
)

// Policy selects how follower acknowledgments combine into a quorum verdict.
type Policy string

const (
	// PolicyFlat counts acknowledgments from a single follower set.
	PolicyFlat Policy = "flat"
	// PolicyTiered requires one synchronous copy, then counts the
	// asynchronous tier toward the remaining quorum.
	PolicyTiered Policy = "tiered"
)

// Config is the immutable replication topology for the process lifetime.
type Config struct {
	Policy Policy

	// Quorum is the total acknowledgment target, the synchronous one
	// included under the tiered policy.
	Quorum int

	// Followers is the flat follower set, used by PolicyFlat only.
	Followers []string

	// SyncFollowers is ordered; the first entry is the primary synchronous
	// partner and later entries are failover candidates.
	SyncFollowers  []string
	AsyncFollowers []string

	SyncTimeout  time.Duration
	AsyncTimeout time.Duration
}

// Outcome is the result of one coordinator invocation.
type Outcome struct {
	CommittedLocally   bool
	QuorumMet          bool
	SyncSatisfied      bool
	AsyncConfirmations int
	FailedSyncPeers    []string
}

// Coordinator fans a committed write out to followers and decides the
// quorum verdict. It never retries and never cancels stragglers: attempts
// still in flight when quorum is reached run to completion in the
// background.
type Coordinator struct {
	cfg        Config
	replicator Replicator
}

func NewCoordinator(cfg Config, replicator Replicator) *Coordinator {
	return &Coordinator{cfg: cfg, replicator: replicator}
}

// Replicate runs the configured policy for one already-committed write.
func (c *Coordinator) Replicate(ctx context.Context, key, value string) Outcome {
	start := time.Now()

	var out Outcome
	switch c.cfg.Policy {
	case PolicyTiered:
		out = c.replicateTiered(ctx, key, value)
	default:
		out = c.replicateFlat(ctx, key, value)
	}

	metrics.FanoutDuration.WithLabelValues(string(c.cfg.Policy)).Observe(time.Since(start).Seconds())
	if out.QuorumMet {
		metrics.QuorumVerdictsTotal.WithLabelValues(string(c.cfg.Policy), "met").Inc()
	} else {
		metrics.QuorumVerdictsTotal.WithLabelValues(string(c.cfg.Policy), "unmet").Inc()
	}
	return out
}

// replicateFlat launches every follower concurrently and counts
// acknowledgments in completion order, returning as soon as the quorum
// target is reached.
func (c *Coordinator) replicateFlat(ctx context.Context, key, value string) Outcome {
	out := Outcome{CommittedLocally: true}

	followers := c.cfg.Followers
	if len(followers) == 0 {
		// The leader's own copy satisfies any quorum target.
		out.QuorumMet = true
		out.SyncSatisfied = true
		return out
	}

	results := c.fanOut(ctx, followers, key, value, c.cfg.AsyncTimeout, TierFlat)

	acks := 0
	for i := 0; i < len(followers); i++ {
		if <-results {
			acks++
			if acks >= c.cfg.Quorum {
				break
			}
		}
	}

	out.AsyncConfirmations = acks
	if acks >= c.cfg.Quorum {
		out.QuorumMet = true
		out.SyncSatisfied = true
	} else {
		slog.Warn("flat quorum not reached", "acks", acks, "quorum", c.cfg.Quorum, "followers", len(followers))
	}
	return out
}

// replicateTiered walks the ordered sync tier until one peer acknowledges,
// then counts the async tier toward the remaining target. A write the sync
// tier rejected fails outright; the async tier can never compensate.
func (c *Coordinator) replicateTiered(ctx context.Context, key, value string) Outcome {
	out := Outcome{CommittedLocally: true}

	for i, peer := range c.cfg.SyncFollowers {
		if i > 0 {
			metrics.SyncTierFailovers.Inc()
			slog.Warn("sync tier failover", "peer", peer, "attempt", i+1)
		}
		if c.replicator.Replicate(ctx, peer, key, value, c.cfg.SyncTimeout, TierSync) {
			out.SyncSatisfied = true
			break
		}
		out.FailedSyncPeers = append(out.FailedSyncPeers, peer)
	}

	if !out.SyncSatisfied {
		slog.Warn("no synchronous copy made", "failed_sync_peers", out.FailedSyncPeers)
		return out
	}

	if c.cfg.Quorum <= 1 {
		// The synchronous copy alone satisfies the quorum; the async tier
		// is not contacted at all.
		out.QuorumMet = true
		return out
	}

	needed := c.cfg.Quorum - 1
	async := c.cfg.AsyncFollowers
	if len(async) == 0 {
		out.QuorumMet = true
		return out
	}

	results := c.fanOut(ctx, async, key, value, c.cfg.AsyncTimeout, TierAsync)

	confirmations := 0
	for i := 0; i < len(async); i++ {
		if <-results {
			confirmations++
			if confirmations >= needed {
				break
			}
		}
	}

	out.AsyncConfirmations = confirmations
	out.QuorumMet = confirmations >= needed
	if !out.QuorumMet {
		slog.Warn("async tier fell short of quorum", "confirmations", confirmations, "needed", needed)
	}
	return out
}

// fanOut launches one attempt per peer and returns a channel yielding
// results in completion order. The channel is buffered for the full peer
// set so stragglers finish without a receiver; detaching from the caller's
// cancellation keeps them running after an early quorum exit, like the
// client-visible response, which does not wait for them either.
func (c *Coordinator) fanOut(ctx context.Context, peers []string, key, value string, timeout time.Duration, tier Tier) <-chan bool {
	results := make(chan bool, len(peers))
	bg := context.WithoutCancel(ctx)

	for _, peer := range peers {
		go func(p string) {
			results <- c.replicator.Replicate(bg, p, key, value, timeout, tier)
		}(peer)
	}
	return results
}
