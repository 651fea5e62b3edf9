package configuration

import (
	"fmt"
	"net"
	"strings"
	"time"
)

const (
	PolicyFlat   = "flat"
	PolicyTiered = "tiered"
)

type Properties struct {
	App         AppProperties         `yaml:"app"`
	Transport   TransportProperties   `yaml:"transport"`
	Replication ReplicationProperties `yaml:"replication"`
}

type AppProperties struct {
	LogLevel string `yaml:"log-level"`
}

type TransportProperties struct {
	Network     string `yaml:"network"`
	Address     string `yaml:"address"`
	Port        string `yaml:"port"`
	Timeout     uint64 `yaml:"timeout"`
	MetricsPort string `yaml:"metrics-port"`
}

type ReplicationProperties struct {
	Leader         bool   `yaml:"leader"`
	Policy         string `yaml:"policy"`
	Quorum         int    `yaml:"quorum"`
	Followers      string `yaml:"followers"`
	SyncFollowers  string `yaml:"sync-followers"`
	AsyncFollowers string `yaml:"async-followers"`
	MinDelayMs     int    `yaml:"min-delay-ms"`
	MaxDelayMs     int    `yaml:"max-delay-ms"`
	SyncTimeoutMs  int    `yaml:"sync-timeout-ms"`
	AsyncTimeoutMs int    `yaml:"async-timeout-ms"`
}

func (t *TransportProperties) ClientAddr() string {
	return net.JoinHostPort(t.Address, t.Port)
}

func (t *TransportProperties) MetricsAddr() string {
	return net.JoinHostPort(t.Address, t.MetricsPort)
}

// FollowerList splits the comma-separated flat follower set; empty input
// yields an empty set, not a one-element set of "".
func (r *ReplicationProperties) FollowerList() []string {
	return splitPeers(r.Followers)
}

func (r *ReplicationProperties) SyncFollowerList() []string {
	return splitPeers(r.SyncFollowers)
}

func (r *ReplicationProperties) AsyncFollowerList() []string {
	return splitPeers(r.AsyncFollowers)
}

func (r *ReplicationProperties) MinDelay() time.Duration {
	return time.Duration(r.MinDelayMs) * time.Millisecond
}

func (r *ReplicationProperties) MaxDelay() time.Duration {
	return time.Duration(r.MaxDelayMs) * time.Millisecond
}

func (r *ReplicationProperties) SyncTimeout() time.Duration {
	return time.Duration(r.SyncTimeoutMs) * time.Millisecond
}

func (r *ReplicationProperties) AsyncTimeout() time.Duration {
	return time.Duration(r.AsyncTimeoutMs) * time.Millisecond
}

func (r *ReplicationProperties) Validate() error {
	switch r.Policy {
	case PolicyFlat, PolicyTiered:
	default:
		return fmt.Errorf("unknown replication policy %q", r.Policy)
	}

	if r.Leader {
		if r.Quorum < 1 {
			return fmt.Errorf("quorum must be at least 1, got %d", r.Quorum)
		}
		if r.Policy == PolicyTiered && len(r.SyncFollowerList()) == 0 {
			return fmt.Errorf("tiered policy requires at least one sync follower")
		}
	}

	if r.MinDelayMs < 0 || r.MaxDelayMs < r.MinDelayMs {
		return fmt.Errorf("invalid delay range [%d, %d]", r.MinDelayMs, r.MaxDelayMs)
	}

	if r.SyncTimeoutMs <= 0 {
		return fmt.Errorf("sync timeout must be positive, got %d", r.SyncTimeoutMs)
	}

	return nil
}

func splitPeers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	peers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			peers = append(peers, p)
		}
	}
	return peers
}
