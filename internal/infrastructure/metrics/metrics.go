package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matrimony_recommendations_total",
			Help: "Total number of recommendation lists served",
		},
		[]string{"source"},
	)

	matchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matrimony_match_scores",
			Help:    "Distribution of recommended match percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	horoscopeScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matrimony_horoscope_scores",
			Help:    "Distribution of horoscope compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	interestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matrimony_interests_total",
			Help: "Total number of interests by resulting status",
		},
		[]string{"status"},
	)

	responseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "matrimony_response_time_seconds",
			Help: "Time spent in matching operations",
		},
		[]string{"action"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matrimony_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)

const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

func RecordRecommendations(source string, scores []int) {
	recommendationsTotal.WithLabelValues(source).Inc()
	for _, s := range scores {
		matchScores.Observe(float64(s))
	}
}

func RecordHoroscopeScore(score int) {
	horoscopeScores.Observe(float64(score))
}

func RecordInterest(status string) {
	interestsTotal.WithLabelValues(status).Inc()
}

func RecordResponseTime(action string, duration time.Duration) {
	responseTime.WithLabelValues(action).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, route string, status int) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
