// internal/ratelimit/middleware.go
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// BurstLimiter é o freio em memória por IP de cliente, na frente de toda
// a API. Independente do guard persistente: este segura rajadas de
// requisições, aquele segura tentativas de credencial.
type BurstLimiter struct {
	mu      sync.Mutex
	entries map[string]*burstEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type burstEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewBurstLimiter(rps float64, burst int) *BurstLimiter {
	return &BurstLimiter{
		entries: make(map[string]*burstEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

func (b *BurstLimiter) limiterDoIP(ip string) *rate.Limiter {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	if ent, ok := b.entries[ip]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	// Aproveita a passagem para descartar entradas ociosas.
	cutoff := now.Add(-b.idleTTL)
	for k, ent := range b.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(b.entries, k)
		}
	}

	lim := rate.NewLimiter(b.rps, b.burst)
	b.entries[ip] = &burstEntry{lim: lim, lastSeen: now}
	return lim
}

func ipDoCliente(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware aplica o token bucket por IP em toda requisição.
func (b *BurstLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !b.limiterDoIP(ipDoCliente(r)).Allow() {
			http.Error(w, "Muitas requisições", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
