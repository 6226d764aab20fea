package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics holds request counters for the service.
// Thread-safe via atomics and mutex.
type Metrics struct {
	totalRequests  int64
	activeRequests int64
	totalErrors    int64
	totalLatencyMs int64
	maxLatencyMs   int64

	startTime      time.Time
	mu             sync.Mutex
	endpointCounts map[string]int64
	statusCodes    map[int]int64
}

func New() *Metrics {
	return &Metrics{
		startTime:      time.Now(),
		endpointCounts: make(map[string]int64),
		statusCodes:    make(map[int]int64),
	}
}

// Middleware tracks request count, latency, active connections, and error rates
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			atomic.AddInt64(&m.activeRequests, 1)
			start := time.Now()

			err := next(c)

			latencyMs := time.Since(start).Milliseconds()
			atomic.AddInt64(&m.activeRequests, -1)
			atomic.AddInt64(&m.totalRequests, 1)
			atomic.AddInt64(&m.totalLatencyMs, latencyMs)

			// Update max latency (lock-free CAS loop)
			for {
				current := atomic.LoadInt64(&m.maxLatencyMs)
				if latencyMs <= current {
					break
				}
				if atomic.CompareAndSwapInt64(&m.maxLatencyMs, current, latencyMs) {
					break
				}
			}

			statusCode := c.Response().Status
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			endpoint := fmt.Sprintf("%s %s", c.Request().Method, path)

			m.mu.Lock()
			m.endpointCounts[endpoint]++
			m.statusCodes[statusCode]++
			m.mu.Unlock()

			if statusCode >= 400 {
				atomic.AddInt64(&m.totalErrors, 1)
			}

			return err
		}
	}
}

// Snapshot is a point-in-time view of the counters
type Snapshot struct {
	TotalRequests  int64            `json:"total_requests"`
	ActiveRequests int64            `json:"active_requests"`
	TotalErrors    int64            `json:"total_errors"`
	ErrorRate      float64          `json:"error_rate_pct"`
	AvgLatencyMs   float64          `json:"avg_latency_ms"`
	MaxLatencyMs   int64            `json:"max_latency_ms"`
	UptimeSeconds  float64          `json:"uptime_seconds"`
	EndpointCounts map[string]int64 `json:"endpoint_counts"`
	StatusCodes    map[int]int64    `json:"status_codes"`
}

// Handler serves the current snapshot. The route policy keeps it behind
// authentication like every other unlisted path.
func (m *Metrics) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		total := atomic.LoadInt64(&m.totalRequests)
		errorCount := atomic.LoadInt64(&m.totalErrors)
		totalLatency := atomic.LoadInt64(&m.totalLatencyMs)
		uptime := time.Since(m.startTime).Seconds()

		var avgLatency float64
		if total > 0 {
			avgLatency = float64(totalLatency) / float64(total)
		}

		var errorRate float64
		if total > 0 {
			errorRate = float64(errorCount) / float64(total) * 100
		}

		m.mu.Lock()
		endpointCounts := make(map[string]int64, len(m.endpointCounts))
		for k, v := range m.endpointCounts {
			endpointCounts[k] = v
		}
		statusCodes := make(map[int]int64, len(m.statusCodes))
		for k, v := range m.statusCodes {
			statusCodes[k] = v
		}
		m.mu.Unlock()

		return c.JSON(http.StatusOK, Snapshot{
			TotalRequests:  total,
			ActiveRequests: atomic.LoadInt64(&m.activeRequests),
			TotalErrors:    errorCount,
			ErrorRate:      errorRate,
			AvgLatencyMs:   avgLatency,
			MaxLatencyMs:   atomic.LoadInt64(&m.maxLatencyMs),
			UptimeSeconds:  uptime,
			EndpointCounts: endpointCounts,
			StatusCodes:    statusCodes,
		})
	}
}
