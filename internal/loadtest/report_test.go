package loadtest

import (
	"testing"
	"time"
)

func samplesFromMillis(ms ...int) []writeSample {
	out := make([]writeSample, 0, len(ms))
	for _, m := range ms {
		out = append(out, writeSample{latency: time.Duration(m) * time.Millisecond, ok: true})
	}
	return out
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := computeMetrics(nil)
	if m.Requests != 0 || m.Successes != 0 || m.Fails != 0 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestComputeMetrics_AllFailed(t *testing.T) {
	samples := []writeSample{{ok: false}, {ok: false}}

	m := computeMetrics(samples)
	if m.Requests != 2 || m.Fails != 2 || m.Successes != 0 {
		t.Errorf("metrics = %+v", m)
	}
	if m.AvgLatency != 0 {
		t.Errorf("avg = %v; want 0 with no successes", m.AvgLatency)
	}
}

func TestComputeMetrics_Percentiles(t *testing.T) {
	samples := samplesFromMillis(100, 200, 300, 400, 500)
	samples = append(samples, writeSample{ok: false})

	m := computeMetrics(samples)

	if m.Requests != 6 || m.Successes != 5 || m.Fails != 1 {
		t.Fatalf("metrics = %+v", m)
	}
	if got, want := m.AvgLatency, 0.300; !closeTo(got, want) {
		t.Errorf("avg = %v; want %v", got, want)
	}
	if got, want := m.MedianLatency, 0.300; !closeTo(got, want) {
		t.Errorf("median = %v; want %v", got, want)
	}
	if m.P95Latency < m.MedianLatency {
		t.Errorf("p95 %v below median %v", m.P95Latency, m.MedianLatency)
	}
}

func TestComputeMetrics_SingleSample(t *testing.T) {
	m := computeMetrics(samplesFromMillis(250))

	if !closeTo(m.AvgLatency, 0.250) || !closeTo(m.MedianLatency, 0.250) || !closeTo(m.P95Latency, 0.250) {
		t.Errorf("metrics = %+v", m)
	}
}

func TestReport_OutputFile(t *testing.T) {
	r := Report{WriteQuorum: 3}
	if got := r.OutputFile(); got != "perf_results_q3.json" {
		t.Errorf("got %q", got)
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
