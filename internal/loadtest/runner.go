package loadtest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	kveventspb "quorumdb/internal/transport/gen/kvevents"
)

// Config holds the knobs for one load run.
type Config struct {
	LeaderAddr    string
	FollowerAddrs []string
	WriteQuorum   int
	Writes        int
	Concurrency   int
	KeySpace      int
	Timeout       time.Duration
}

// Runner fires concurrent writes at the leader and then checks that every
// follower converged on the last written value per key.
type Runner struct {
	cfg Config
	rng *rand.Rand
	mu  sync.Mutex
}

func NewRunner(cfg Config) *Runner {
	if cfg.Writes <= 0 {
		cfg.Writes = 200
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 20
	}
	if cfg.KeySpace <= 0 {
		cfg.KeySpace = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Runner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *Runner) Run(ctx context.Context) (*Report, error) {
	conn, err := dial(r.cfg.LeaderAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to leader %s: %w", r.cfg.LeaderAddr, err)
	}
	defer conn.Close()
	leader := kveventspb.NewKVServiceClient(conn)

	slog.Info("Starting load run",
		"leader", r.cfg.LeaderAddr,
		"writes", r.cfg.Writes,
		"concurrency", r.cfg.Concurrency)

	samples := r.fireWrites(ctx, leader)

	report := &Report{
		WriteQuorum: r.cfg.WriteQuorum,
		Metrics:     computeMetrics(samples),
		Followers:   make(map[string]map[string]string),
		Mismatches:  make(map[string]map[string]Mismatch),
	}

	// Completed writes in sample order decide the expected value per key.
	expected := make(map[string]string)
	for _, s := range samples {
		if s.ok {
			expected[s.key] = s.value
		}
	}

	report.LeaderState, err = fetchDump(ctx, leader, r.cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to dump leader state: %w", err)
	}

	for _, addr := range r.cfg.FollowerAddrs {
		state, err := r.dumpFollower(ctx, addr)
		if err != nil {
			slog.Error("Failed to dump follower state", "peer", addr, "error", err)
			continue
		}
		report.Followers[addr] = state

		mismatches := make(map[string]Mismatch)
		for key, want := range expected {
			if got := state[key]; got != want {
				mismatches[key] = Mismatch{Expected: want, Actual: got}
			}
		}
		if len(mismatches) > 0 {
			report.Mismatches[addr] = mismatches
		}
	}

	return report, nil
}

func (r *Runner) fireWrites(ctx context.Context, client kveventspb.KVServiceClient) []writeSample {
	samples := make([]writeSample, 0, r.cfg.Writes)
	results := make(chan writeSample, r.cfg.Writes)
	sem := make(chan struct{}, r.cfg.Concurrency)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Writes; i++ {
		key := fmt.Sprintf("key-%d", r.nextKey())
		value := fmt.Sprintf("value-%d-%d", i, time.Now().UnixNano())

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results <- r.writeOne(ctx, client, key, value)
		}()
	}
	wg.Wait()
	close(results)

	for s := range results {
		samples = append(samples, s)
	}
	return samples
}

func (r *Runner) writeOne(ctx context.Context, client kveventspb.KVServiceClient, key, value string) writeSample {
	reqCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	start := time.Now()
	_, err := client.Write(reqCtx, &kveventspb.WriteRequest{Key: key, Value: value})
	sample := writeSample{latency: time.Since(start), ok: err == nil, key: key, value: value}
	if err != nil {
		slog.Debug("Write failed", "key", key, "error", err)
	}
	return sample
}

func (r *Runner) nextKey() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(r.cfg.KeySpace)
}

func (r *Runner) dumpFollower(ctx context.Context, addr string) (map[string]string, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return fetchDump(ctx, kveventspb.NewKVServiceClient(conn), r.cfg.Timeout)
}

func fetchDump(ctx context.Context, client kveventspb.KVServiceClient, timeout time.Duration) (map[string]string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := client.Dump(reqCtx, &kveventspb.DumpRequest{})
	if err != nil {
		return nil, err
	}
	state := make(map[string]string, len(res.GetEntries()))
	for _, entry := range res.GetEntries() {
		state[entry.GetKey()] = entry.GetValue()
	}
	return state, nil
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}
