package integration

import (
	"testing"
	"time"

	"quorumdb/internal/replication"
	kveventspb "quorumdb/internal/transport/gen/kvevents"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCluster_TieredWriteReplicates(t *testing.T) {
	syncFollower := startFollower(t)
	asyncFollower := startFollower(t)

	leader := startLeader(t, tieredConfig(2,
		[]string{syncFollower.Addr},
		[]string{asyncFollower.Addr},
	))
	client := newClient(t, leader.Addr)

	res, err := client.Write(writeCtx(t), &kveventspb.WriteRequest{Key: "k1", Value: "v1"})
	require.NoError(t, err)
	require.Equal(t, "k1", res.GetKey())
	require.Equal(t, uint32(2), res.GetQuorum())
	require.Empty(t, res.GetWarning())

	requireEventuallyHas(t, syncFollower, "k1", "v1")
	requireEventuallyHas(t, asyncFollower, "k1", "v1")

	got, ok := leader.Storage.Get("k1")
	require.True(t, ok)
	require.Equal(t, "v1", got)
}

func TestCluster_SyncFailover(t *testing.T) {
	backup := startFollower(t)

	leader := startLeader(t, tieredConfig(1,
		[]string{"127.0.0.1:1", backup.Addr},
		nil,
	))
	client := newClient(t, leader.Addr)

	res, err := client.Write(writeCtx(t), &kveventspb.WriteRequest{Key: "k1", Value: "v1"})
	require.NoError(t, err)
	require.Contains(t, res.GetWarning(), "127.0.0.1:1")
	require.Equal(t, []string{"127.0.0.1:1"}, res.GetFailedSyncPeers())

	requireEventuallyHas(t, backup, "k1", "v1")
}

func TestCluster_QuorumUnmetKeepsLeaderCommit(t *testing.T) {
	leader := startLeader(t, tieredConfig(1,
		[]string{"127.0.0.1:1"},
		nil,
	))
	client := newClient(t, leader.Addr)

	_, err := client.Write(writeCtx(t), &kveventspb.WriteRequest{Key: "k1", Value: "v1"})
	require.Error(t, err)
	require.Equal(t, codes.Aborted, status.Code(err))

	// The leader applied the write before replication and never rolls back.
	read, err := client.Read(writeCtx(t), &kveventspb.ReadRequest{Key: "k1"})
	require.NoError(t, err)
	require.Equal(t, "v1", read.GetValue())
}

func TestCluster_FlatQuorum(t *testing.T) {
	f1 := startFollower(t)
	f2 := startFollower(t)

	leader := startLeader(t, replication.Config{
		Policy:       replication.PolicyFlat,
		Quorum:       2,
		Followers:    []string{f1.Addr, f2.Addr},
		AsyncTimeout: 3 * time.Second,
	})
	client := newClient(t, leader.Addr)

	_, err := client.Write(writeCtx(t), &kveventspb.WriteRequest{Key: "k1", Value: "v1"})
	require.NoError(t, err)

	requireEventuallyHas(t, f1, "k1", "v1")
	requireEventuallyHas(t, f2, "k1", "v1")
}

func TestCluster_FlatQuorumUnmet(t *testing.T) {
	f1 := startFollower(t)

	leader := startLeader(t, replication.Config{
		Policy:       replication.PolicyFlat,
		Quorum:       2,
		Followers:    []string{f1.Addr, "127.0.0.1:1"},
		AsyncTimeout: time.Second,
	})
	client := newClient(t, leader.Addr)

	_, err := client.Write(writeCtx(t), &kveventspb.WriteRequest{Key: "k1", Value: "v1"})
	require.Error(t, err)
	require.Equal(t, codes.Aborted, status.Code(err))
}

func TestCluster_FollowerRejectsDirectWrite(t *testing.T) {
	follower := startFollower(t)
	client := newClient(t, follower.Addr)

	_, err := client.Write(writeCtx(t), &kveventspb.WriteRequest{Key: "k1", Value: "v1"})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestCluster_LeaderRejectsReplicateIntake(t *testing.T) {
	follower := startFollower(t)

	leader := startLeader(t, tieredConfig(1, []string{follower.Addr}, nil))
	client := newClient(t, leader.Addr)

	_, err := client.Replicate(writeCtx(t), &kveventspb.ReplicateRequest{Key: "k1", Value: "v1"})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestCluster_HealthAndDump(t *testing.T) {
	follower := startFollower(t)
	leader := startLeader(t, tieredConfig(1, []string{follower.Addr}, nil))

	leaderClient := newClient(t, leader.Addr)
	followerClient := newClient(t, follower.Addr)

	health, err := leaderClient.Health(writeCtx(t), &kveventspb.HealthRequest{})
	require.NoError(t, err)
	require.Equal(t, "healthy", health.GetStatus())
	require.True(t, health.GetLeader())

	health, err = followerClient.Health(writeCtx(t), &kveventspb.HealthRequest{})
	require.NoError(t, err)
	require.False(t, health.GetLeader())

	for _, kv := range [][2]string{{"k1", "v1"}, {"k2", "v2"}} {
		_, err := leaderClient.Write(writeCtx(t), &kveventspb.WriteRequest{Key: kv[0], Value: kv[1]})
		require.NoError(t, err)
	}

	dump, err := followerClient.Dump(writeCtx(t), &kveventspb.DumpRequest{})
	require.NoError(t, err)
	require.Len(t, dump.GetEntries(), 2)
}

func TestCluster_ReadMissingKey(t *testing.T) {
	follower := startFollower(t)
	leader := startLeader(t, tieredConfig(1, []string{follower.Addr}, nil))
	client := newClient(t, leader.Addr)

	_, err := client.Read(writeCtx(t), &kveventspb.ReadRequest{Key: "missing"})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}
