package resilience

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// LimiterConfig holds rate limiter configuration.
type LimiterConfig struct {
	GlobalRPS   float64 // Global requests per second
	GlobalBurst int     // Global burst size
	KeyRPS      float64 // Per-key requests per second
	KeyBurst    int     // Per-key burst size
	GroupRPS    float64 // Rate for negative numeric keys (group chats). 0 = KeyRPS.
	GroupBurst  int     // Burst for group chats. 0 = KeyBurst.
	MaxKeys     int     // Per-key limiters kept at most. 0 = 10000.

	CleanupInterval time.Duration // How often idle limiters are swept. 0 disables the sweeper.
	IdleTTL         time.Duration // Limiters unused for this long are dropped.
}

// DefaultLimiterConfig returns sensible defaults for Telegram.
func DefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		GlobalRPS:       30, // Telegram ~30 msg/s global
		GlobalBurst:     10,
		KeyRPS:          1, // 1 msg/s per chat recommended
		KeyBurst:        3,
		GroupRPS:        0.33, // ~20/min in groups
		GroupBurst:      2,
		MaxKeys:         10000,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         10 * time.Minute,
	}
}

type keyEntry struct {
	limiter  *rate.Limiter
	lastUsed atomic.Int64
}

// Limiter provides global and per-key rate limiting.
type Limiter struct {
	cfg    LimiterConfig
	global *rate.Limiter

	mu   sync.RWMutex
	keys map[string]*keyEntry

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter and starts its idle sweeper.
func NewLimiter(cfg LimiterConfig) *Limiter {
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 10000
	}
	l := &Limiter{
		cfg:    cfg,
		global: rate.NewLimiter(rate.Limit(cfg.GlobalRPS), cfg.GlobalBurst),
		keys:   make(map[string]*keyEntry),
		stop:   make(chan struct{}),
	}
	if cfg.CleanupInterval > 0 && cfg.IdleTTL > 0 {
		go l.sweepLoop()
	}
	return l
}

// Wait blocks until the limiter for key and the global limiter both allow
// a request. An empty key waits on the global limiter only.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	if key != "" {
		if err := l.get(key).Wait(ctx); err != nil {
			return err
		}
	}
	return l.global.Wait(ctx)
}

// Len returns the number of per-key limiters held.
func (l *Limiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.keys)
}

// Sweep drops limiters idle since before cutoff and returns how many were removed.
func (l *Limiter) Sweep(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for k, e := range l.keys {
		if e.lastUsed.Load() < cutoff.UnixNano() {
			delete(l.keys, k)
			n++
		}
	}
	return n
}

// Close stops the sweeper. It is safe to call more than once.
func (l *Limiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep(time.Now().Add(-l.cfg.IdleTTL))
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	now := time.Now().UnixNano()

	l.mu.RLock()
	e, ok := l.keys[key]
	l.mu.RUnlock()
	if ok {
		e.lastUsed.Store(now)
		return e.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if e, ok = l.keys[key]; ok {
		e.lastUsed.Store(now)
		return e.limiter
	}

	if len(l.keys) >= l.cfg.MaxKeys {
		l.evictOldest()
	}

	rps, burst := l.cfg.KeyRPS, l.cfg.KeyBurst
	if isGroupKey(key) {
		if l.cfg.GroupRPS > 0 {
			rps = l.cfg.GroupRPS
		}
		if l.cfg.GroupBurst > 0 {
			burst = l.cfg.GroupBurst
		}
	}

	e = &keyEntry{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
	e.lastUsed.Store(now)
	l.keys[key] = e
	return e.limiter
}

// evictOldest must be called with mu held.
func (l *Limiter) evictOldest() {
	var oldestKey string
	var oldest int64
	for k, e := range l.keys {
		if t := e.lastUsed.Load(); oldestKey == "" || t < oldest {
			oldestKey, oldest = k, t
		}
	}
	if oldestKey != "" {
		delete(l.keys, oldestKey)
	}
}

// Group chats have negative numeric IDs.
func isGroupKey(key string) bool {
	id, err := strconv.ParseInt(key, 10, 64)
	return err == nil && id < 0
}
