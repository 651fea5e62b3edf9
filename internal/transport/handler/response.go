package handler

import (
	"quorumdb/internal/command"
	kveventspb "quorumdb/internal/transport/gen/kvevents"
)

func WriteResponse(res *command.WriteResult) *kveventspb.WriteResponse {
	return &kveventspb.WriteResponse{
		Key:                res.Key,
		Value:              res.Value,
		Quorum:             uint32(res.Quorum),
		AsyncConfirmations: uint32(res.AsyncConfirmations),
		FailedSyncPeers:    res.FailedSyncPeers,
		Warning:            res.Warning,
	}
}

func DumpResponse(entries map[string]string) *kveventspb.DumpResponse {
	resp := &kveventspb.DumpResponse{
		Entries: make([]*kveventspb.DumpEntry, 0, len(entries)),
	}
	for k, v := range entries {
		resp.Entries = append(resp.Entries, &kveventspb.DumpEntry{Key: k, Value: v})
	}
	return resp
}
