package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	guideGeneratedTotal      atomic.Uint64
	guideFailedTotal         atomic.Uint64
	recommendationsJobsTotal atomic.Uint64
	recommendationsCrsTotal  atomic.Uint64

	guideDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2000})
)

// IncGuideGenerated increments the career guide success counter.
func IncGuideGenerated() {
	guideGeneratedTotal.Add(1)
}

// IncGuideFailed increments the career guide failure counter.
func IncGuideFailed() {
	guideFailedTotal.Add(1)
}

// IncJobRecommendations increments the job recommendation request counter.
func IncJobRecommendations() {
	recommendationsJobsTotal.Add(1)
}

// IncCourseRecommendations increments the course recommendation request counter.
func IncCourseRecommendations() {
	recommendationsCrsTotal.Add(1)
}

// ObserveGuideDurationMs records a guide generation duration in milliseconds.
func ObserveGuideDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	guideDuration.Observe(value)
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
	writeCounter(&buf, "guide_generated_total", "Total career guides generated", guideGeneratedTotal.Load())
	writeCounter(&buf, "guide_failed_total", "Total career guide generations failed", guideFailedTotal.Load())
	writeCounter(&buf, "recommendations_jobs_total", "Total job recommendation requests served", recommendationsJobsTotal.Load())
	writeCounter(&buf, "recommendations_courses_total", "Total course recommendation requests served", recommendationsCrsTotal.Load())
	writeHistogram(&buf, "guide_duration_ms", "Career guide generation duration in milliseconds", guideDuration.Snapshot())
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
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
