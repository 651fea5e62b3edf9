package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"quorumdb/internal/loadtest"
	"quorumdb/internal/logging"
)

func main() {
	leader := flag.String("leader", "localhost:8000", "leader address")
	followers := flag.String("followers", "", "comma-separated follower addresses")
	quorum := flag.Int("quorum", 1, "write quorum the cluster runs with, used for the report name")
	writes := flag.Int("writes", 200, "number of writes to issue")
	concurrency := flag.Int("concurrency", 20, "maximum in-flight writes")
	keySpace := flag.Int("keys", 50, "number of distinct keys")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	output := flag.String("output", "", "report path, defaults to perf_results_q<quorum>.json")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logging.Init(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := loadtest.NewRunner(loadtest.Config{
		LeaderAddr:    *leader,
		FollowerAddrs: splitAddrs(*followers),
		WriteQuorum:   *quorum,
		Writes:        *writes,
		Concurrency:   *concurrency,
		KeySpace:      *keySpace,
		Timeout:       *timeout,
	})

	report, err := runner.Run(ctx)
	if err != nil {
		slog.Error("Load run failed", "error", err)
		os.Exit(1)
	}

	path := *output
	if path == "" {
		path = report.OutputFile()
	}
	if err := report.WriteJSON(path); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		os.Exit(1)
	}

	slog.Info("Load run finished",
		"report", path,
		"successes", report.Metrics.Successes,
		"fails", report.Metrics.Fails,
		"avg_latency_s", report.Metrics.AvgLatency,
		"p95_latency_s", report.Metrics.P95Latency,
		"mismatched_followers", len(report.Mismatches))
}

func splitAddrs(raw string) []string {
	var addrs []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			addrs = append(addrs, trimmed)
		}
	}
	return addrs
}
