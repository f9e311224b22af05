package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramBucketsCumulateOnce(t *testing.T) {
	h := newHistogram([]float64{100, 250, 500})
	h.Observe(120)
	h.Observe(600)
	h.Observe(40)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_duration_ms", "help text", h.Snapshot())
	out := buf.String()

	for _, line := range []string{
		`test_duration_ms_bucket{le="100"} 1`,
		`test_duration_ms_bucket{le="250"} 2`,
		`test_duration_ms_bucket{le="500"} 2`,
		`test_duration_ms_bucket{le="+Inf"} 3`,
		`test_duration_ms_sum 760`,
		`test_duration_ms_count 3`,
	} {
		if !strings.Contains(out, line+"\n") {
			t.Fatalf("missing line %q in output:\n%s", line, out)
		}
	}
}

func TestHistogramObserveBoundary(t *testing.T) {
	h := newHistogram([]float64{100, 250})
	h.Observe(100)

	snap := h.Snapshot()
	if snap.counts[0] != 1 || snap.counts[1] != 0 {
		t.Fatalf("expected observation in first bucket only, got %v", snap.counts)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncBatchStarted()
	IncEvaluation()

	out := Render()
	for _, name := range []string{
		"evaluation_batch_started_total",
		"evaluation_records_total",
		"evaluation_batch_duration_ms_bucket",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing metric %q in output:\n%s", name, out)
		}
	}
}
