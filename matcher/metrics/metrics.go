/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/pkg/types"
	"d7y.io/matcher/version"
)

// Variables declared for metrics.
var (
	TrainStartedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "training_started_total",
		Help:      "Counter of the number of the training started.",
	}, []string{"model_type"})

	TrainCoalescedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "training_coalesced_total",
		Help:      "Counter of the number of train requests answered without starting a training.",
	}, []string{"reason"})

	TrainFinishedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "training_finished_total",
		Help:      "Counter of the number of the training finished.",
	}, []string{"model_type"})

	TrainFinishedFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "training_finished_failure_total",
		Help:      "Counter of the number of failed of the training finished.",
	}, []string{"model_type"})

	TrainDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "training_duration_seconds",
		Help:      "Histogram of the training duration.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"model_type"})

	PredictCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "predict_total",
		Help:      "Counter of the number of the prediction.",
	})

	PredictFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "predict_failure_total",
		Help:      "Counter of the number of failed of the prediction.",
	})

	PredictColumnCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "predict_column_total",
		Help:      "Counter of the number of the predicted columns.",
	})

	TrainingTaskGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "training_tasks",
		Help:      "Gauge of the number of running training tasks.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.MatcherMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version", "go_tags", "go_gcflags"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion, version.Gotags, version.Gogcflags).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
