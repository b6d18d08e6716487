package model

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusBlockConversions        prometheus.Counter
	prometheusBlockConversionErrors   prometheus.Counter
	prometheusBlockConversionDuration prometheus.Histogram
	prometheusConvertedTransactions   prometheus.Counter
	prometheusConvertedAssetOutputs   prometheus.Counter
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusBlockConversions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bsl",
			Subsystem: "model",
			Name:      "block_conversions",
			Help:      "Number of blocks converted from parsed slices",
		},
	)

	prometheusBlockConversionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bsl",
			Subsystem: "model",
			Name:      "block_conversion_errors",
			Help:      "Number of block conversions that failed",
		},
	)

	prometheusBlockConversionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bsl",
			Subsystem: "model",
			Name:      "block_conversion_duration_millis",
			Help:      "Duration of block conversions in milliseconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	prometheusConvertedTransactions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bsl",
			Subsystem: "model",
			Name:      "converted_transactions",
			Help:      "Number of transactions converted into go-bt transactions",
		},
	)

	// outputs of satsnet blocks that carry at least one asset
	prometheusConvertedAssetOutputs = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bsl",
			Subsystem: "model",
			Name:      "converted_asset_outputs",
			Help:      "Number of converted outputs carrying assets",
		},
	)
}
