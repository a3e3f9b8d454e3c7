// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/wire"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "console"

// ProviderSet is the Wire provider set for the metrics package.
var ProviderSet = wire.NewSet(NewMetrics)

// Metrics 持有独立的 prometheus registry 以及 HTTP 指标
type Metrics struct {
	registry   *prometheus.Registry
	collectors []prometheus.Collector
	mu         sync.Mutex

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the registry with go/process collectors and the http metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
			},
			[]string{"method", "route"},
		),
	}
	registry.MustRegister(m.httpRequestsTotal, m.httpRequestDuration)
	return m
}

// RegisterCollector registers a prometheus collector
func (m *Metrics) RegisterCollector(collector prometheus.Collector) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.registry.Register(collector); err != nil {
		return errors.Wrap(err, "register collector")
	}
	m.collectors = append(m.collectors, collector)
	return nil
}

// RegisterGaugeFunc exposes the value returned by fn as a gauge
func (m *Metrics) RegisterGaugeFunc(name, help string, fn func() float64) error {
	return m.RegisterCollector(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, fn))
}

// RecordHttpRequest records one handled request
func (m *Metrics) RecordHttpRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the exposition handler for the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// GetRegistry returns the prometheus registry
func (m *Metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}
