// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const rateLimitedBody = `{"error":{"id":"rate_limited","message":"too many requests"}}` + "\n"

// clientWindow counts the requests of one client inside a sliding window.
type clientWindow struct {
	hits []time.Time
}

// RateLimiter limits each client to a number of catalog requests per
// window. Clients are keyed by RemoteAddr; put chi's RealIP in front of it
// when the API runs behind a trusted proxy.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

// NewRateLimiter creates a limiter allowing limit requests per window and
// starts a goroutine that evicts idle clients. Call Stop when done.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(limit, window, time.Now)

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.evict()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

func newRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		now:     now,
		stopCh:  make(chan struct{}),
	}
}

// Stop terminates the eviction goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// allow records a hit for key. When the client is over the limit it
// returns false and how long until the oldest hit leaves the window.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cw, ok := rl.clients[key]
	if !ok {
		cw = &clientWindow{}
		rl.clients[key] = cw
	}

	kept := cw.hits[:0]
	for _, ts := range cw.hits {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	cw.hits = kept

	if len(cw.hits) >= rl.limit {
		return false, cw.hits[0].Sub(cutoff)
	}
	cw.hits = append(cw.hits, now)
	return true, 0
}

// evict drops clients with no hit inside the window.
func (rl *RateLimiter) evict() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cw := range rl.clients {
		if len(cw.hits) == 0 || !cw.hits[len(cw.hits)-1].After(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// Middleware rejects requests over the limit with a JSON 429 and a
// Retry-After header in whole seconds.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)
		ok, wait := rl.allow(client)
		if !ok {
			slog.Warn("rate limit exceeded",
				"client", client,
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(rateLimitedBody))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey strips the port from RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
