package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quorumdb/internal/replication"
	"quorumdb/internal/storage"
)

// fakeCoordinator returns a scripted outcome and records its invocations.
type fakeCoordinator struct {
	outcome replication.Outcome
	calls   int
}

func (f *fakeCoordinator) Replicate(ctx context.Context, key, value string) replication.Outcome {
	f.calls++
	return f.outcome
}

func successOutcome() replication.Outcome {
	return replication.Outcome{CommittedLocally: true, QuorumMet: true, SyncSatisfied: true}
}

func newLeader(t *testing.T, coord Coordinator) (*Service, *storage.Service) {
	t.Helper()
	storageSvc := storage.NewStorageService()
	return NewCommandService(storageSvc, coord, true, 2), storageSvc
}

func newFollower(t *testing.T) (*Service, *storage.Service) {
	t.Helper()
	storageSvc := storage.NewStorageService()
	return NewCommandService(storageSvc, &fakeCoordinator{}, false, 2), storageSvc
}

func TestWrite_Success(t *testing.T) {
	coord := &fakeCoordinator{outcome: successOutcome()}
	svc, _ := newLeader(t, coord)

	res, err := svc.Write(context.Background(), "k1", "v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.Key != "k1" || res.Value != "v1" {
		t.Errorf("result = %+v", res)
	}
	if res.Quorum != 2 {
		t.Errorf("quorum = %d; want 2", res.Quorum)
	}
	if res.Warning != "" {
		t.Errorf("unexpected warning %q", res.Warning)
	}
	if coord.calls != 1 {
		t.Errorf("coordinator invoked %d times; want 1", coord.calls)
	}
}

func TestWrite_EmptyKey(t *testing.T) {
	coord := &fakeCoordinator{outcome: successOutcome()}
	svc, _ := newLeader(t, coord)

	_, err := svc.Write(context.Background(), "", "v1")
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if coord.calls != 0 {
		t.Error("coordinator should not run for an invalid write")
	}
}

func TestWrite_RejectedOnFollower(t *testing.T) {
	svc, storageSvc := newFollower(t)

	_, err := svc.Write(context.Background(), "k1", "v1")
	if !errors.Is(err, ErrNotLeader) {
		t.Fatalf("expected ErrNotLeader, got %v", err)
	}
	if _, ok := storageSvc.Get("k1"); ok {
		t.Error("rejected write must not touch the store")
	}
}

func TestWrite_QuorumUnmetKeepsLocalCommit(t *testing.T) {
	coord := &fakeCoordinator{outcome: replication.Outcome{
		CommittedLocally: true,
		FailedSyncPeers:  []string{"localhost:8001"},
	}}
	svc, storageSvc := newLeader(t, coord)

	_, err := svc.Write(context.Background(), "k1", "v1")
	if !errors.Is(err, ErrQuorumUnmet) {
		t.Fatalf("expected ErrQuorumUnmet, got %v", err)
	}

	// The local commit happened first and is never rolled back.
	got, ok := storageSvc.Get("k1")
	if !ok || got != "v1" {
		t.Errorf("local commit missing after quorum failure: %q, %v", got, ok)
	}
}

func TestWrite_WarningOnDegradedSyncTier(t *testing.T) {
	coord := &fakeCoordinator{outcome: replication.Outcome{
		CommittedLocally: true,
		QuorumMet:        true,
		SyncSatisfied:    true,
		FailedSyncPeers:  []string{"localhost:8001"},
	}}
	svc, _ := newLeader(t, coord)

	res, err := svc.Write(context.Background(), "k1", "v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Warning == "" || !strings.Contains(res.Warning, "localhost:8001") {
		t.Errorf("warning = %q; want the failed peer named", res.Warning)
	}
}

func TestRead_Success(t *testing.T) {
	svc, storageSvc := newLeader(t, &fakeCoordinator{outcome: successOutcome()})
	storageSvc.Set("k1", "v1")

	got, err := svc.Read("k1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "v1" {
		t.Errorf("got %q; want v1", got)
	}
}

func TestRead_NotFound(t *testing.T) {
	svc, _ := newLeader(t, &fakeCoordinator{})

	_, err := svc.Read("missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestRead_EmptyKey(t *testing.T) {
	svc, _ := newLeader(t, &fakeCoordinator{})

	_, err := svc.Read("")
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestReplicate_AppliesOnFollower(t *testing.T) {
	svc, storageSvc := newFollower(t)

	if err := svc.Replicate("k1", "v1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, _ := storageSvc.Get("k1")
	if got != "v1" {
		t.Errorf("got %q; want v1", got)
	}
}

func TestReplicate_LastWriteWins(t *testing.T) {
	svc, storageSvc := newFollower(t)

	if err := svc.Replicate("k1", "old"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Replicate("k1", "new"); err != nil {
		t.Fatal(err)
	}

	got, _ := storageSvc.Get("k1")
	if got != "new" {
		t.Errorf("got %q; want new", got)
	}
	if storageSvc.Len() != 1 {
		t.Errorf("got %d keys; want 1", storageSvc.Len())
	}
}

func TestReplicate_RejectedOnLeader(t *testing.T) {
	svc, _ := newLeader(t, &fakeCoordinator{})

	err := svc.Replicate("k1", "v1")
	if !errors.Is(err, ErrNotFollower) {
		t.Fatalf("expected ErrNotFollower, got %v", err)
	}
}

func TestDump(t *testing.T) {
	svc, storageSvc := newFollower(t)
	storageSvc.Set("k1", "v1")
	storageSvc.Set("k2", "v2")

	dump := svc.Dump()
	if len(dump) != 2 || dump["k1"] != "v1" || dump["k2"] != "v2" {
		t.Errorf("dump = %v", dump)
	}
}
