// Package token_bucket — потокобезопасный token bucket для
// rate limiting входящих запросов.
package token_bucket

import (
	"sync"
	"time"
)

type TokenBucket struct {
	mu sync.Mutex

	capacity   float64
	tokens     float64
	refillRate float64 // токенов в секунду
	lastRefill time.Time
}

// NewTokenBucket создает полное ведро на capacity токенов,
// пополняемое со скоростью refillRate токенов в секунду.
func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow списывает один токен. false означает отказ: ведро пустое.
func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// refillLocked доливает токены пропорционально прошедшему времени.
// Дробный остаток сохраняется, поэтому медленный refill не теряется
// на округлении.
func (b *TokenBucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	b.tokens += elapsed * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}
