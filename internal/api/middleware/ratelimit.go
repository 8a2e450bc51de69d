package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
)

const msgRateLimited = "too many requests"

// RateLimitMetrics интерфейс для учета отклоненных запросов
type RateLimitMetrics interface {
	IncRateLimited()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter token bucket на каждого клиента (по IP).
// Клиенты, не присылавшие запросов дольше idle, удаляются при очистке.
type ClientLimiter struct {
	clients      map[string]*clientEntry
	mu           sync.Mutex
	rps          rate.Limit
	burst        int
	idle         time.Duration
	timeProvider TimeProvider
}

func NewClientLimiter(requestsPerSecond float64, burst int, idle time.Duration) *ClientLimiter {
	return &ClientLimiter{
		clients:      make(map[string]*clientEntry),
		rps:          rate.Limit(requestsPerSecond),
		burst:        burst,
		idle:         idle,
		timeProvider: realTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени
func (c *ClientLimiter) WithTimeProvider(tp TimeProvider) *ClientLimiter {
	c.timeProvider = tp
	return c
}

// GetLimiter возвращает limiter клиента, создавая его при первом обращении
func (c *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeProvider.Now()
	entry, exists := c.clients[client]
	if !exists {
		entry = &clientEntry{limiter: rate.NewLimiter(c.rps, c.burst)}
		c.clients[client] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// Allow reports whether the client may make a request now
func (c *ClientLimiter) Allow(client string) bool {
	return c.GetLimiter(client).Allow()
}

// Sweep удаляет неактивных клиентов и возвращает их количество
func (c *ClientLimiter) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.timeProvider.Now().Add(-c.idle)
	removed := 0
	for client, entry := range c.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(c.clients, client)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически вызывает Sweep до отмены ctx
func (c *ClientLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Len returns the number of tracked clients
func (c *ClientLimiter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

// RateLimit отвечает 429, когда клиент превысил лимит
func RateLimit(limiter *ClientLimiter, m RateLimitMetrics, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)
			if !limiter.Allow(client) {
				m.IncRateLimited()
				log.Warn("%s %s - Rate limited: client=%s", r.Method, r.URL.Path, client)
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
