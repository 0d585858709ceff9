// Package metrics2 is a small façade over prometheus/client_golang. Call
// sites ask for a named counter or gauge (optionally tagged) without
// touching the prometheus API directly, mirroring how the rest of this code
// base keeps instrumentation calls one layer removed from the metrics
// backend.
package metrics2

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var disallowedChars = regexp.MustCompile(`[.\-]`)

// clean converts a dotted or dashed metric name into the underscore form
// Prometheus requires.
func clean(name string) string {
	return disallowedChars.ReplaceAllString(name, "_")
}

// Counter is a monotonically increasing value, e.g. "events processed".
type Counter interface {
	Inc()
	Add(delta float64)
	Get() float64
}

// Gauge is a value that can move in either direction, e.g. "cache entries".
type Gauge interface {
	Update(v float64)
	Get() float64
}

type promCounter struct {
	c prometheus.Counter
	v *atomicFloat
}

func (p *promCounter) Inc() {
	p.c.Inc()
	p.v.add(1)
}
func (p *promCounter) Add(delta float64) {
	p.c.Add(delta)
	p.v.add(delta)
}
func (p *promCounter) Get() float64 { return p.v.get() }

type promGauge struct {
	g prometheus.Gauge
	v *atomicFloat
}

func (p *promGauge) Update(val float64) {
	p.g.Set(val)
	p.v.set(val)
}
func (p *promGauge) Get() float64 { return p.v.get() }

type client struct {
	mu          sync.Mutex
	counterVecs map[string]*prometheus.CounterVec
	gaugeVecs   map[string]*prometheus.GaugeVec
	counters    map[string]*promCounter
	gauges      map[string]*promGauge
}

var defaultClient = newClient()

func newClient() *client {
	return &client{
		counterVecs: map[string]*prometheus.CounterVec{},
		gaugeVecs:   map[string]*prometheus.GaugeVec{},
		counters:    map[string]*promCounter{},
		gauges:      map[string]*promGauge{},
	}
}

// key identifies one specific child (fixed label values) of a metric.
func key(name string, tags map[string]string) string {
	b := strings.Builder{}
	b.WriteString(name)
	for _, k := range labelNames(tags) {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(tags[k])
	}
	return b.String()
}

func labelPairs(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{}
	for k, v := range tags {
		labels[k] = v
	}
	return labels
}

func labelNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for k := range tags {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// GetCounter returns the Counter registered under name/tags, creating it on
// first use. Every call for a given name must use the same set of tag keys.
func GetCounter(name string, tags map[string]string) Counter {
	defaultClient.mu.Lock()
	defer defaultClient.mu.Unlock()

	k := key(name, tags)
	if c, ok := defaultClient.counters[k]; ok {
		return c
	}
	cleaned := clean(name)
	vec, ok := defaultClient.counterVecs[cleaned]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{Name: cleaned}, labelNames(tags))
		prometheus.MustRegister(vec)
		defaultClient.counterVecs[cleaned] = vec
	}
	c := &promCounter{c: vec.With(labelPairs(tags)), v: &atomicFloat{}}
	defaultClient.counters[k] = c
	return c
}

// GetGauge returns the Gauge registered under name/tags, creating it on
// first use. Every call for a given name must use the same set of tag keys.
func GetGauge(name string, tags map[string]string) Gauge {
	defaultClient.mu.Lock()
	defer defaultClient.mu.Unlock()

	k := key(name, tags)
	if g, ok := defaultClient.gauges[k]; ok {
		return g
	}
	cleaned := clean(name)
	vec, ok := defaultClient.gaugeVecs[cleaned]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: cleaned}, labelNames(tags))
		prometheus.MustRegister(vec)
		defaultClient.gaugeVecs[cleaned] = vec
	}
	g := &promGauge{g: vec.With(labelPairs(tags)), v: &atomicFloat{}}
	defaultClient.gauges[k] = g
	return g
}

// Serve runs an HTTP server exposing the registered metrics at /metrics on
// addr until ctx is canceled. Intended to be run in its own goroutine.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

type atomicFloat struct {
	mu sync.Mutex
	v  float64
}

func (a *atomicFloat) add(delta float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.v += delta
}

func (a *atomicFloat) set(val float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.v = val
}

func (a *atomicFloat) get() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.v
}
