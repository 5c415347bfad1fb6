package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// QuizSubmissionCounter 交卷结果：success / rejected / failed
	QuizSubmissionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_submissions_total",
			Help: "Total number of quiz submissions by result",
		},
		[]string{"result"},
	)

	QuizScoreRatio = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_score_ratio",
			Help:    "Correct answers divided by total questions per attempt",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

const (
	SubmissionSuccess  = "success"
	SubmissionRejected = "rejected"
	SubmissionFailed   = "failed"
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(QuizSubmissionCounter)
	prometheus.MustRegister(QuizScoreRatio)
}

func ObserveSubmission(result string, score, total int) {
	QuizSubmissionCounter.WithLabelValues(result).Inc()
	if result == SubmissionSuccess && total > 0 {
		QuizScoreRatio.Observe(float64(score) / float64(total))
	}
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
