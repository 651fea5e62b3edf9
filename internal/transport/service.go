package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"quorumdb/internal/command"
	"quorumdb/internal/configuration"
	"quorumdb/internal/metrics"
	"quorumdb/internal/transport/endpoint"
	kveventspb "quorumdb/internal/transport/gen/kvevents"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type Service struct {
	network        string
	address        string
	port           string
	timeout        uint64
	commandService *command.Service
	Server         *grpc.Server
}

func NewTransportService(transportConfig *configuration.TransportProperties, commandService *command.Service) *Service {
	return &Service{
		network:        transportConfig.Network,
		address:        transportConfig.Address,
		port:           transportConfig.Port,
		timeout:        transportConfig.Timeout,
		commandService: commandService,
	}
}

func (ts *Service) StartServer() (net.Listener, error) {
	lis, err := net.Listen(ts.network, net.JoinHostPort(ts.address, ts.port))
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(ts.timeout) * time.Second
	if ts.timeout == 0 {
		slog.Warn("Timeout can't be less than 1 second. Setting transport timeout to 1 second.")
		timeout = 1 * time.Second
	} else {
		slog.Info(fmt.Sprintf("Setting transport timeout to %d seconds", ts.timeout))
	}

	ts.Server = grpc.NewServer(grpc.ChainUnaryInterceptor(
		timeoutInterceptor(timeout),
		metrics.UnaryServerInterceptor(),
	))

	kveventspb.RegisterKVServiceServer(ts.Server, &endpoint.GRPCServer{CommandService: ts.commandService})
	reflection.Register(ts.Server)

	slog.Info("transport listening", "addr", lis.Addr().String())
	go func() {
		if err := ts.Server.Serve(lis); err != nil {
			slog.Error("failed to serve listener", "Error", err)
		}
	}()

	return lis, nil
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
