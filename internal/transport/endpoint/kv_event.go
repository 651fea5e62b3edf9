package endpoint

import (
	"context"
	"errors"
	"log/slog"

	"quorumdb/internal/command"
	"quorumdb/internal/transport/handler"
	kveventspb "quorumdb/internal/transport/gen/kvevents"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GRPCServer struct {
	kveventspb.UnimplementedKVServiceServer
	CommandService *command.Service
}

func (s *GRPCServer) Write(ctx context.Context, req *kveventspb.WriteRequest) (*kveventspb.WriteResponse, error) {
	slog.Debug("received write", "key", req.GetKey())

	res, err := s.CommandService.Write(ctx, req.GetKey(), req.GetValue())
	if err != nil {
		slog.Error("write failed", "key", req.GetKey(), "error", err)
		return nil, s.resolveError(err)
	}

	return handler.WriteResponse(res), nil
}

func (s *GRPCServer) Read(ctx context.Context, req *kveventspb.ReadRequest) (*kveventspb.ReadResponse, error) {
	value, err := s.CommandService.Read(req.GetKey())
	if err != nil {
		return nil, s.resolveError(err)
	}

	return &kveventspb.ReadResponse{Key: req.GetKey(), Value: value}, nil
}

func (s *GRPCServer) Replicate(ctx context.Context, req *kveventspb.ReplicateRequest) (*kveventspb.ReplicateResponse, error) {
	if err := s.CommandService.Replicate(req.GetKey(), req.GetValue()); err != nil {
		slog.Error("replicate intake failed", "key", req.GetKey(), "error", err)
		return nil, s.resolveError(err)
	}

	return &kveventspb.ReplicateResponse{Ok: true}, nil
}

func (s *GRPCServer) Dump(ctx context.Context, req *kveventspb.DumpRequest) (*kveventspb.DumpResponse, error) {
	return handler.DumpResponse(s.CommandService.Dump()), nil
}

func (s *GRPCServer) Health(ctx context.Context, req *kveventspb.HealthRequest) (*kveventspb.HealthResponse, error) {
	return &kveventspb.HealthResponse{
		Status: "healthy",
		Leader: s.CommandService.IsLeader(),
	}, nil
}

func (s *GRPCServer) resolveError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	case errors.Is(err, command.ErrNotLeader):
		return status.Errorf(codes.FailedPrecondition, "%s", err)

	case errors.Is(err, command.ErrNotFollower):
		return status.Errorf(codes.FailedPrecondition, "%s", err)

	case errors.Is(err, command.ErrQuorumUnmet):
		return status.Errorf(codes.Aborted, "%s", err)

	case errors.Is(err, command.ErrKeyNotFound):
		return status.Errorf(codes.NotFound, "%s", err)

	case errors.Is(err, command.ErrInvalidCommand):
		return status.Errorf(codes.InvalidArgument, "%s", err)
	}

	return status.Error(codes.Internal, "internal error occurred")
}
