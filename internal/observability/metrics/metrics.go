package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

var (
	once                    sync.Once
	metricsRouter           *chi.Mux
	hexClientLatency        *prometheus.HistogramVec
	dbLatency               *prometheus.HistogramVec
	pollerDurationHistogram *prometheus.HistogramVec
	stakeLoadDuration       *prometheus.HistogramVec
	apiRequestDuration      *prometheus.HistogramVec
	queueSendErrorCounter   prometheus.Counter
	stakeEventsCounter      *prometheus.CounterVec
	currentDayGauge         prometheus.Gauge
	trackedOwnersGauge      prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// Collectors exist before Init, Init only registers and serves them.
func init() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	hexClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hex_client_latency_seconds",
			Help:    "Histogram of hex contract client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	stakeLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stake_load_duration_seconds",
			Help:    "Histogram of the time spent loading and computing all stakes of an owner.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Histogram of api request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"route", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	stakeEventsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stake_events_received_count",
			Help: "Number of StakeStart and StakeEnd logs received",
		},
		[]string{"type"},
	)

	currentDayGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hex_current_day",
			Help: "Last value of the contract's current day",
		},
	)

	trackedOwnersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracked_owners_count",
			Help: "Number of owners refreshed by the owner poller",
		},
	)
}

// registerMetrics registers the Prometheus metrics.
func registerMetrics() {
	prometheus.MustRegister(
		hexClientLatency,
		dbLatency,
		pollerDurationHistogram,
		stakeLoadDuration,
		apiRequestDuration,
		queueSendErrorCounter,
		stakeEventsCounter,
		currentDayGauge,
		trackedOwnersGauge,
	)
}

func RecordHexClientLatency(d time.Duration, method string, failure bool) {
	hexClientLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordStakeLoadDuration(d time.Duration, failure bool) {
	stakeLoadDuration.WithLabelValues(outcome(failure).String()).Observe(d.Seconds())
}

func RecordApiRequestDuration(d time.Duration, route string, statusCode int) {
	apiRequestDuration.WithLabelValues(route, strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordCurrentDay(day uint64) {
	currentDayGauge.Set(float64(day))
}

func RecordTrackedOwnersCount(count int) {
	trackedOwnersGauge.Set(float64(count))
}

func IncStakeEvents(eventType string) {
	stakeEventsCounter.WithLabelValues(eventType).Inc()
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
