package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"quorumdb/internal/loadtest"

	"github.com/stretchr/testify/require"
)

func TestLoadRun_AgainstTieredCluster(t *testing.T) {
	syncFollower := startFollower(t)
	asyncFollower := startFollower(t)

	leader := startLeader(t, tieredConfig(2,
		[]string{syncFollower.Addr},
		[]string{asyncFollower.Addr},
	))

	runner := loadtest.NewRunner(loadtest.Config{
		LeaderAddr:    leader.Addr,
		FollowerAddrs: []string{syncFollower.Addr, asyncFollower.Addr},
		WriteQuorum:   2,
		Writes:        40,
		Concurrency:   8,
		KeySpace:      10,
		Timeout:       10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report, err := runner.Run(ctx)
	require.NoError(t, err)

	require.Equal(t, 40, report.Metrics.Requests)
	require.Equal(t, 40, report.Metrics.Successes)
	require.Zero(t, report.Metrics.Fails)
	require.Greater(t, report.Metrics.P95Latency, 0.0)
	require.Len(t, report.Followers, 2)
	require.NotEmpty(t, report.LeaderState)

	path := filepath.Join(t.TempDir(), report.OutputFile())
	require.NoError(t, report.WriteJSON(path))
	require.Equal(t, "perf_results_q2.json", report.OutputFile())
}
