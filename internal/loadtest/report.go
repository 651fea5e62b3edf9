package loadtest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Metrics summarizes write latencies across one run.
type Metrics struct {
	Requests      int     `json:"requests"`
	Successes     int     `json:"successes"`
	Fails         int     `json:"fails"`
	AvgLatency    float64 `json:"avg_latency"`
	MedianLatency float64 `json:"median_latency"`
	P95Latency    float64 `json:"p95_latency"`
}

// Mismatch records a follower key that diverged from the last successfully
// written value.
type Mismatch struct {
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Report is the JSON output of one load run.
type Report struct {
	WriteQuorum int                            `json:"write_quorum"`
	Metrics     Metrics                        `json:"metrics"`
	LeaderState map[string]string              `json:"leader_state"`
	Followers   map[string]map[string]string   `json:"followers"`
	Mismatches  map[string]map[string]Mismatch `json:"correctness_mismatches"`
}

// OutputFile follows the perf_results_q<Q>.json naming scheme.
func (r *Report) OutputFile() string {
	return fmt.Sprintf("perf_results_q%d.json", r.WriteQuorum)
}

func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func computeMetrics(samples []writeSample) Metrics {
	m := Metrics{Requests: len(samples)}

	latencies := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.ok {
			latencies = append(latencies, s.latency.Seconds())
		} else {
			m.Fails++
		}
	}
	m.Successes = len(latencies)

	if len(latencies) == 0 {
		return m
	}

	sort.Float64s(latencies)

	var sum float64
	for _, l := range latencies {
		sum += l
	}
	m.AvgLatency = sum / float64(len(latencies))
	m.MedianLatency = percentile(latencies, 0.50)
	m.P95Latency = percentile(latencies, 0.95)
	return m
}

// percentile expects a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

type writeSample struct {
	latency time.Duration
	ok      bool
	key     string
	value   string
}
