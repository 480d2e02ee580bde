package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/bahr-checker/pkg/ctxutil"
)

const idleBucketTTL = 10 * time.Minute

// RateLimiter keeps one rate.Limiter per client address. Clients idle for
// longer than idleBucketTTL are swept in the background until Stop.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*client
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts the sweeper. Call Stop on shutdown.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*client),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweep(sweepEvery)
	return rl
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client with a full burst. A limit of
// zero or less disables limiting.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(perMinute))))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, ok := ctxutil.ClientIPFromCtx(r.Context())
			if !ok {
				key = remoteHost(r.RemoteAddr)
			}
			if !rl.allow(key, perMinute) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, perMinute int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.buckets[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(perMinute)/60, perMinute)}
		rl.buckets[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, c := range rl.buckets {
		if now.Sub(c.lastSeen) > idleBucketTTL {
			delete(rl.buckets, key)
		}
	}
}
