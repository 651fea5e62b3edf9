package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NodeIsLeader = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "node",
		Name:      "is_leader",
		Help:      "Whether this node accepts client writes (1=leader, 0=follower)",
	})

	ReplicationAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "attempts_total",
		Help:      "Total per-peer replication attempts",
	}, []string{"tier", "result"})

	ReplicationAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "attempt_duration_seconds",
		Help:      "Per-peer replication attempt duration, injected delay included",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
	}, []string{"tier"})

	QuorumVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "quorum_verdicts_total",
		Help:      "Total quorum decisions",
	}, []string{"policy", "result"})

	FanoutDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "fanout_duration_seconds",
		Help:      "Time from fan-out start to quorum verdict",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
	}, []string{"policy"})

	SyncTierFailovers = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "sync_failovers_total",
		Help:      "Writes that fell past the primary synchronous peer",
	})

	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "command",
		Name:      "total",
		Help:      "Total commands processed",
	}, []string{"type", "status"})

	CommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "command",
		Name:      "duration_seconds",
		Help:      "Command processing duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"type"})

	CommandsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "command",
		Name:      "in_flight",
		Help:      "Commands currently being processed",
	})

	StorageKeysTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "storage",
		Name:      "keys_total",
		Help:      "Total keys in storage",
	})

	StorageOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Total storage operations",
	}, []string{"operation"})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Total gRPC requests",
	}, []string{"service", "method", "code"})

	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"service", "method"})
)
