package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "habitquest"

// Coin sources.
const (
	SourceCompletion  = "completion"
	SourceAchievement = "achievement"
)

// Metrics owns the application Prometheus registry and its collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	habitsCompleted     *prometheus.CounterVec
	coinsGranted        *prometheus.CounterVec
	achievementsGranted *prometheus.CounterVec
	dayRollovers        prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "path"},
		),
		habitsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "progress",
				Name:      "habits_completed_total",
				Help:      "Total number of habit completions.",
			},
			[]string{"difficulty"},
		),
		coinsGranted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "progress",
				Name:      "coins_granted_total",
				Help:      "Coins credited to users by source.",
			},
			[]string{"source"},
		),
		achievementsGranted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "progress",
				Name:      "achievements_granted_total",
				Help:      "Achievements unlocked by users.",
			},
			[]string{"kind"},
		),
		dayRollovers: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "progress",
				Name:      "day_rollovers_total",
				Help:      "Day boundaries applied to user habits.",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.httpRequests,
		m.httpDuration,
		m.habitsCompleted,
		m.coinsGranted,
		m.achievementsGranted,
		m.dayRollovers,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records a served request under its route pattern.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	method = strings.ToUpper(method)
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCompletion records a finished habit and its payout.
func (m *Metrics) RecordCompletion(difficulty string, coins int64) {
	if difficulty == "" {
		difficulty = "unknown"
	}
	m.habitsCompleted.WithLabelValues(difficulty).Inc()
	m.addCoins(SourceCompletion, coins)
}

// RecordAchievement records an unlocked achievement and its payout.
func (m *Metrics) RecordAchievement(kind string, coins int64) {
	m.achievementsGranted.WithLabelValues(kind).Inc()
	m.addCoins(SourceAchievement, coins)
}

// RecordRollover records a day boundary applied to a user.
func (m *Metrics) RecordRollover() {
	m.dayRollovers.Inc()
}

func (m *Metrics) addCoins(source string, coins int64) {
	if coins <= 0 {
		return
	}
	m.coinsGranted.WithLabelValues(source).Add(float64(coins))
}
