package command

import "errors"

var (
	ErrNotLeader = errors.New("not leader")

	ErrNotFollower = errors.New("node is leader")

	ErrKeyNotFound = errors.New("key not found")

	ErrQuorumUnmet = errors.New("quorum not met")

	ErrInvalidCommand = errors.New("invalid command")
)
