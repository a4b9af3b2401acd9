// Package metrics exposes prometheus collectors for site builds.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "md2site"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder records page generation and build statistics.
type Recorder struct {
	pages       *prometheus.CounterVec
	pageSeconds *prometheus.HistogramVec
	staticFiles prometheus.Counter
	builds      *prometheus.CounterVec
	lastBuild   prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pages_generated_total",
			Help:      "Pages generated, by engine and result",
		}, []string{"engine", "result"}),
		pageSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "page_generation_seconds",
			Help:      "Time spent converting one markdown file into a page",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"engine"}),
		staticFiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "static_files_copied_total",
			Help:      "Static files mirrored into the output directory",
		}),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "builds_total",
			Help:      "Site builds, by result",
		}, []string{"result"}),
		lastBuild: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_build_timestamp_seconds",
			Help:      "Unix time of the last completed build",
		}),
	}

	for _, c := range []prometheus.Collector{r.pages, r.pageSeconds, r.staticFiles, r.builds, r.lastBuild} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObservePage records one page conversion.
func (r *Recorder) ObservePage(engine string, d time.Duration, err error) {
	if r == nil {
		return
	}
	r.pages.WithLabelValues(engine, result(err)).Inc()
	r.pageSeconds.WithLabelValues(engine).Observe(d.Seconds())
}

// AddStaticFiles records mirrored static files.
func (r *Recorder) AddStaticFiles(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.staticFiles.Add(float64(n))
}

// ObserveBuild records a completed build. A build with failed pages
// counts as an error.
func (r *Recorder) ObserveBuild(finished time.Time, failed int) {
	if r == nil {
		return
	}
	res := ResultOK
	if failed > 0 {
		res = ResultError
	}
	r.builds.WithLabelValues(res).Inc()
	r.lastBuild.Set(float64(finished.Unix()))
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
