package integration

import (
	"context"
	"net"
	"testing"
	"time"

	"quorumdb/internal/command"
	"quorumdb/internal/configuration"
	"quorumdb/internal/replication"
	"quorumdb/internal/storage"
	"quorumdb/internal/transport"
	kveventspb "quorumdb/internal/transport/gen/kvevents"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type TestNode struct {
	Addr     string
	Storage  *storage.Service
	Command  *command.Service
	Listener net.Listener
	server   *transport.Service
}

func (n *TestNode) Stop() {
	if n.server != nil && n.server.Server != nil {
		n.server.Server.Stop()
	}
}

func startNode(t *testing.T, leader bool, repCfg replication.Config) *TestNode {
	t.Helper()

	storageSvc := storage.NewStorageService()

	var coordinator command.Coordinator
	if leader {
		replicator := replication.NewPeerReplicator(replication.FixedDelayer(0))
		coordinator = replication.NewCoordinator(repCfg, replicator)
	} else {
		coordinator = replication.NewCoordinator(replication.Config{Policy: replication.PolicyFlat, Quorum: 1}, nil)
	}

	cmdSvc := command.NewCommandService(storageSvc, coordinator, leader, repCfg.Quorum)

	transportSvc := transport.NewTransportService(&configuration.TransportProperties{
		Network: "tcp",
		Address: "127.0.0.1",
		Port:    "0",
		Timeout: 10,
	}, cmdSvc)

	lis, err := transportSvc.StartServer()
	require.NoError(t, err)

	node := &TestNode{
		Addr:     lis.Addr().String(),
		Storage:  storageSvc,
		Command:  cmdSvc,
		Listener: lis,
		server:   transportSvc,
	}
	t.Cleanup(node.Stop)
	return node
}

func startFollower(t *testing.T) *TestNode {
	t.Helper()
	return startNode(t, false, replication.Config{Quorum: 1})
}

func startLeader(t *testing.T, repCfg replication.Config) *TestNode {
	t.Helper()
	return startNode(t, true, repCfg)
}

func newClient(t *testing.T, addr string) kveventspb.KVServiceClient {
	t.Helper()
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return kveventspb.NewKVServiceClient(conn)
}

func requireEventuallyHas(t *testing.T, node *TestNode, key, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		got, ok := node.Storage.Get(key)
		return ok && got == want
	}, 5*time.Second, 20*time.Millisecond, "node %s never converged on %s=%s", node.Addr, key, want)
}

func writeCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func tieredConfig(quorum int, syncFollowers, asyncFollowers []string) replication.Config {
	return replication.Config{
		Policy:         replication.PolicyTiered,
		Quorum:         quorum,
		SyncFollowers:  syncFollowers,
		AsyncFollowers: asyncFollowers,
		SyncTimeout:    2 * time.Second,
		AsyncTimeout:   3 * time.Second,
	}
}
