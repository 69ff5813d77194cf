// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records use-case outcomes, HTTP traffic and corpus size.
type Collector struct {
	useCases     *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	corpusRows   *prometheus.GaugeVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lingopress_usecase_results_total",
			Help: "Use-case calls by use case and outcome.",
		}, []string{"usecase", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lingopress_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lingopress_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		corpusRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lingopress_corpus_rows",
			Help: "Rows loaded into the corpus by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(c.useCases, c.httpRequests, c.httpDuration, c.corpusRows)
	return c
}

// RecordUseCase counts one use-case call.
func (c *Collector) RecordUseCase(name, outcome string) {
	c.useCases.WithLabelValues(name, outcome).Inc()
}

// RecordHTTPRequest counts one served request and its latency.
func (c *Collector) RecordHTTPRequest(method string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method).Observe(d.Seconds())
}

// SetCorpusRows publishes the number of loaded rows of one kind.
func (c *Collector) SetCorpusRows(kind string, n int) {
	c.corpusRows.WithLabelValues(kind).Set(float64(n))
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
