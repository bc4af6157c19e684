package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"tripcost/internal/domain"
)

// Estimate kinds used as the "kind" label.
const (
	KindCore     = "core"
	KindItemized = "itemized"
	KindCompare  = "compare"
)

// Rate table resolution sources used as the "source" label.
const (
	SourceCache    = "cache"
	SourceStore    = "store"
	SourceBuiltin  = "builtin"
	SourceFallback = "fallback"
)

var (
	initOnce sync.Once

	estimatesTotalCounter   *prometheus.CounterVec
	estimateCostPerMile     *prometheus.HistogramVec
	rateResolutionsCounter  *prometheus.CounterVec
	crossBorderChecksMetric *prometheus.CounterVec
)

// Init registers metrics on the default Prometheus registry exactly once.
func Init() {
	initOnce.Do(func() {
		estimatesTotalCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trip_cost_estimates_total",
				Help: "Total number of trip cost estimates by kind and driver type.",
			},
			[]string{"kind", "driver_type"},
		)

		estimateCostPerMile = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trip_cost_per_mile",
				Help:    "Estimated cost per mile by driver type.",
				Buckets: []float64{0.5, 1, 1.5, 2, 2.5, 3, 4, 5, 10},
			},
			[]string{"driver_type"},
		)

		rateResolutionsCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_table_resolutions_total",
				Help: "Total number of rate table lookups by source.",
			},
			[]string{"source"},
		)

		crossBorderChecksMetric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cross_border_checks_total",
				Help: "Total number of cross-border checks by result.",
			},
			[]string{"cross_border"},
		)

		prometheus.MustRegister(
			estimatesTotalCounter,
			estimateCostPerMile,
			rateResolutionsCounter,
			crossBorderChecksMetric,
		)

		// Ensure counter vectors are visible at /metrics before first increment.
		for _, kind := range []string{KindCore, KindItemized, KindCompare} {
			for _, dt := range domain.DriverTypes {
				estimatesTotalCounter.WithLabelValues(kind, string(dt))
			}
		}
		for _, source := range []string{SourceCache, SourceStore, SourceBuiltin, SourceFallback} {
			rateResolutionsCounter.WithLabelValues(source)
		}
	})
}

func IncEstimate(kind string, driverType domain.DriverType) {
	Init()
	estimatesTotalCounter.WithLabelValues(kind, string(driverType)).Inc()
}

func ObserveCostPerMile(driverType domain.DriverType, cpm float64) {
	Init()
	estimateCostPerMile.WithLabelValues(string(driverType)).Observe(cpm)
}

func IncRateResolution(source string) {
	Init()
	rateResolutionsCounter.WithLabelValues(source).Inc()
}

func IncCrossBorderCheck(crossBorder bool) {
	Init()
	label := "false"
	if crossBorder {
		label = "true"
	}
	crossBorderChecksMetric.WithLabelValues(label).Inc()
}
