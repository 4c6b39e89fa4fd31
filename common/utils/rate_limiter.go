package utils

import (
	"sync"
	"time"
)

// RateLimiter 实现令牌桶算法的限流器
type RateLimiter struct {
	rate       float64 //每秒允许的请求数
	capacity   float64 //桶的容量
	tokens     float64 //当前令牌数
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter rate: 每秒允许的请求数 burst: 允许的突发请求数
func NewRateLimiter(rate int, burst int) *RateLimiter {
	return &RateLimiter{
		rate:       float64(rate),
		capacity:   float64(burst * rate),
		tokens:     float64(burst * rate),
		lastRefill: time.Now(),
	}
}

// Allow 判断当前请求是否允许通过
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	newTokens := elapsed * rl.rate
	if rl.tokens < rl.capacity {
		rl.tokens = min(rl.capacity, rl.tokens+newTokens)
	}
	rl.lastRefill = now

	if rl.tokens >= 1.0 {
		rl.tokens -= 1.0
		return true
	}
	return false
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
