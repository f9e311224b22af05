package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	batchStartedTotal   atomic.Uint64
	batchCompletedTotal atomic.Uint64
	documentFailedTotal atomic.Uint64
	evaluationTotal     atomic.Uint64
	qaGeneratedTotal    atomic.Uint64
	qaFailedTotal       atomic.Uint64

	batchDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncBatchStarted increments the batch started counter.
func IncBatchStarted() {
	batchStartedTotal.Add(1)
}

// IncBatchCompleted increments the batch completed counter.
func IncBatchCompleted() {
	batchCompletedTotal.Add(1)
}

// IncDocumentFailed increments the per-document failure counter.
func IncDocumentFailed() {
	documentFailedTotal.Add(1)
}

// IncEvaluation increments the evaluation record counter.
func IncEvaluation() {
	evaluationTotal.Add(1)
}

// IncQAGenerated increments the Q&A generation counter.
func IncQAGenerated() {
	qaGeneratedTotal.Add(1)
}

// IncQAFailed increments the Q&A failure counter.
func IncQAFailed() {
	qaFailedTotal.Add(1)
}

// ObserveBatchDurationMs records a batch duration in milliseconds.
func ObserveBatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	batchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "evaluation_batch_started_total", "Total evaluation batches started", batchStartedTotal.Load())
	writeCounter(&buf, "evaluation_batch_completed_total", "Total evaluation batches completed", batchCompletedTotal.Load())
	writeCounter(&buf, "evaluation_document_failed_total", "Total documents failed within batches", documentFailedTotal.Load())
	writeCounter(&buf, "evaluation_records_total", "Total evaluation records produced", evaluationTotal.Load())
	writeCounter(&buf, "interview_qa_generated_total", "Total interview Q&A sets generated", qaGeneratedTotal.Load())
	writeCounter(&buf, "interview_qa_failed_total", "Total interview Q&A generations failed", qaFailedTotal.Load())
	writeHistogram(&buf, "evaluation_batch_duration_ms", "Evaluation batch duration in milliseconds", batchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; the renderer cumulates for the text format.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
