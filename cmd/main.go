package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"quorumdb/internal/command"
	"quorumdb/internal/configuration"
	"quorumdb/internal/logging"
	"quorumdb/internal/metrics"
	"quorumdb/internal/replication"
	"quorumdb/internal/storage"
	"quorumdb/internal/transport"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	config, err := configuration.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "Error", err)
		return
	}

	logging.Init(config.App.LogLevel)
	slog.Info("Starting node...", "leader", config.Replication.Leader, "policy", config.Replication.Policy)

	if config.Replication.Leader {
		metrics.NodeIsLeader.Set(1)
	} else {
		metrics.NodeIsLeader.Set(0)
	}

	storageService := storage.NewStorageService()

	delayer := replication.NewUniformDelayer(
		config.Replication.MinDelay(),
		config.Replication.MaxDelay(),
		nil,
	)
	replicator := replication.NewPeerReplicator(delayer)

	coordinator := replication.NewCoordinator(replication.Config{
		Policy:         replication.Policy(config.Replication.Policy),
		Quorum:         config.Replication.Quorum,
		Followers:      config.Replication.FollowerList(),
		SyncFollowers:  config.Replication.SyncFollowerList(),
		AsyncFollowers: config.Replication.AsyncFollowerList(),
		SyncTimeout:    config.Replication.SyncTimeout(),
		AsyncTimeout:   config.Replication.AsyncTimeout(),
	}, replicator)

	commandService := command.NewCommandService(
		storageService,
		coordinator,
		config.Replication.Leader,
		config.Replication.Quorum,
	)

	metricsServer := metrics.NewServer(config.Transport.MetricsAddr())
	if err := metricsServer.Start(); err != nil {
		slog.Error("Failed to start metrics server", "Error", err)
		return
	}

	transportService := transport.NewTransportService(&config.Transport, commandService)
	if _, err := transportService.StartServer(); err != nil {
		slog.Error("Failed to start transport server", "Error", err)
		return
	}

	slog.Info("Node Ready")
	<-ctx.Done()

	transportService.Server.GracefulStop()
	metricsServer.Stop()
	slog.Info("Shutting down node...")
}
