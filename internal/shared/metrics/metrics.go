package metrics

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for export counters.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder defines observability hooks for the builder. All methods must be
// safe to call on NoopRecorder so callers never need a nil check.
type Recorder interface {
	IncStepTransition(direction string, to int)
	IncEdit(kind string)
	IncExport(kind, result string)
	ObserveExportDuration(kind string, d time.Duration)
	IncSessionsCreated()
	AddSessionsExpired(n int)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncStepTransition(string, int)                {}
func (NoopRecorder) IncEdit(string)                               {}
func (NoopRecorder) IncExport(string, string)                     {}
func (NoopRecorder) ObserveExportDuration(string, time.Duration) {}
func (NoopRecorder) IncSessionsCreated()                          {}
func (NoopRecorder) AddSessionsExpired(int)                       {}

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	reg             *prom.Registry
	stepTransitions *prom.CounterVec
	edits           *prom.CounterVec
	exports         *prom.CounterVec
	exportDuration  *prom.HistogramVec
	sessionsCreated prom.Counter
	sessionsExpired prom.Counter
}

// NewPrometheusRecorder constructs and registers the builder metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.stepTransitions = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "resume_builder",
			Name:      "step_transitions_total",
			Help:      "Wizard step changes by direction and destination step",
		}, []string{"direction", "to"})
		pr.edits = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "resume_builder",
			Name:      "edits_total",
			Help:      "Resume data replacements by edit kind",
		}, []string{"kind"})
		pr.exports = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "resume_builder",
			Name:      "exports_total",
			Help:      "Exports by kind and outcome",
		}, []string{"kind", "result"})
		pr.exportDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "resume_builder",
			Name:      "export_duration_seconds",
			Help:      "Duration of export operations",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"})
		pr.sessionsCreated = prom.NewCounter(prom.CounterOpts{
			Namespace: "resume_builder",
			Name:      "sessions_created_total",
			Help:      "Builder sessions started",
		})
		pr.sessionsExpired = prom.NewCounter(prom.CounterOpts{
			Namespace: "resume_builder",
			Name:      "sessions_expired_total",
			Help:      "Builder sessions removed by the sweeper",
		})
		reg.MustRegister(pr.stepTransitions, pr.edits, pr.exports, pr.exportDuration, pr.sessionsCreated, pr.sessionsExpired)
	})
	return pr
}

// Registry returns the registry the recorder's collectors live in.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) IncStepTransition(direction string, to int) {
	p.stepTransitions.WithLabelValues(direction, stepLabel(to)).Inc()
}

func (p *PrometheusRecorder) IncEdit(kind string) {
	p.edits.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncExport(kind, result string) {
	p.exports.WithLabelValues(kind, result).Inc()
}

func (p *PrometheusRecorder) ObserveExportDuration(kind string, d time.Duration) {
	p.exportDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncSessionsCreated() {
	p.sessionsCreated.Inc()
}

func (p *PrometheusRecorder) AddSessionsExpired(n int) {
	if n > 0 {
		p.sessionsExpired.Add(float64(n))
	}
}

// Handler exposes the registry in Prometheus text format.
func Handler(reg *prom.Registry) gin.HandlerFunc {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

func stepLabel(step int) string {
	if step < 0 || step > 9 {
		return "other"
	}
	return string(rune('0' + step))
}
