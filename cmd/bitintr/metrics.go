// Copyright 2025 go-bitintr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajroetker/go-bitintr/bitintr/contrib/verify"
)

// verifyMetrics are the gauges written to the --metrics-file textfile after
// a verify run, in the format read by the node exporter textfile collector.
type verifyMetrics struct {
	cases      *prometheus.GaugeVec
	mismatches *prometheus.GaugeVec
	seconds    *prometheus.GaugeVec
	dispatch   *prometheus.GaugeVec
	runSeconds prometheus.Gauge
	lastRun    prometheus.Gauge
	ok         prometheus.Gauge
}

func newVerifyMetrics(reg prometheus.Registerer) *verifyMetrics {
	factory := promauto.With(reg)
	return &verifyMetrics{
		cases: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bitintr_verify_cases",
			Help: "Inputs checked in the last run per operation and type",
		}, []string{"op", "type", "implementation"}),
		mismatches: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bitintr_verify_mismatches",
			Help: "Inputs on which the dispatched and software results differed",
		}, []string{"op", "type", "implementation"}),
		seconds: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bitintr_verify_op_duration_seconds",
			Help: "Time spent verifying one operation and type",
		}, []string{"op", "type"}),
		dispatch: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bitintr_dispatch_info",
			Help: "Dispatch level selected on this machine, always 1",
		}, []string{"level", "vendor", "checked"}),
		runSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bitintr_verify_duration_seconds",
			Help: "Duration of the last verify run",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bitintr_verify_last_run_timestamp_seconds",
			Help: "Unix time the last verify run finished",
		}),
		ok: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bitintr_verify_success",
			Help: "1 if the last run completed without mismatches",
		}),
	}
}

func (m *verifyMetrics) observe(r verify.Result) {
	typ := r.Type.String()
	m.cases.WithLabelValues(r.Op, typ, r.Implementation).Set(float64(r.Cases))
	m.mismatches.WithLabelValues(r.Op, typ, r.Implementation).Set(float64(r.Failed))
	m.seconds.WithLabelValues(r.Op, typ).Set(r.Duration.Seconds())
}

// finish records the run-level gauges. complete is false when the run ended
// early on an error or a canceled context.
func (m *verifyMetrics) finish(report *verify.Report, complete bool, now time.Time) {
	checked := "false"
	if report.Checked {
		checked = "true"
	}
	vendor := report.Features.Vendor
	if vendor == "" {
		vendor = "unknown"
	}
	m.dispatch.WithLabelValues(report.Level, vendor, checked).Set(1)
	m.runSeconds.Set(report.Duration.Seconds())
	m.lastRun.Set(float64(now.Unix()))
	if complete && report.OK() {
		m.ok.Set(1)
	} else {
		m.ok.Set(0)
	}
}
