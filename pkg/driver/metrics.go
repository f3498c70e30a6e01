/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package driver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	Handler() http.Handler

	// Collection
	ObserveScan(elapsed time.Duration, tokens int, err error)
	ObserveParse(elapsed time.Duration, err error)
}

type metricsStore struct {
	registry *prometheus.Registry
	Scans    *prometheus.CounterVec
	Parses   *prometheus.CounterVec
	Tokens   prometheus.Counter
	ScanNS   prometheus.Histogram
	ParseNS  prometheus.Histogram
}

var (
	ResultLabel = "result"

	resultOK    = "ok"
	resultError = "error"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(50*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Scans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lox_scans_total",
			Help: "Number of source units scanned, by result",
		}, []string{ResultLabel}),
		Parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lox_parses_total",
			Help: "Number of token sequences parsed, by result",
		}, []string{ResultLabel}),
		Tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "lox_tokens_total",
			Help: "The total number of tokens produced by the scanner",
		}),
		ScanNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lox_scan_ns",
			Help:    "Time spent scanning a source unit",
			Buckets: buckets,
		}),
		ParseNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lox_parse_ns",
			Help:    "Time spent parsing a token sequence",
			Buckets: buckets,
		}),
	}
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) ObserveScan(elapsed time.Duration, tokens int, err error) {
	ms.Scans.With(prometheus.Labels{ResultLabel: result(err)}).Inc()
	ms.Tokens.Add(float64(tokens))
	ms.ScanNS.Observe(float64(elapsed.Nanoseconds()))
}

func (ms *metricsStore) ObserveParse(elapsed time.Duration, err error) {
	ms.Parses.With(prometheus.Labels{ResultLabel: result(err)}).Inc()
	ms.ParseNS.Observe(float64(elapsed.Nanoseconds()))
}

// ServeMetrics blocks serving the /metrics endpoint of ms on port.
func ServeMetrics(log zerolog.Logger, ms MetricsStore, port int) error {
	log.Info().Int("port", port).Msg("/metrics endpoint started")

	mux := http.NewServeMux()
	mux.Handle("/metrics", ms.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
