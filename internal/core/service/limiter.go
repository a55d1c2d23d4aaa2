package service

import (
	"time"

	"capbot/internal/core/domain"

	"github.com/spf13/viper"
)

const DefaultRateLimitWindow = 10 * time.Second

type Limiter interface {
	Admit(session *domain.Session) bool
}

// RateLimiter admits one generation request per user within a fixed window.
type RateLimiter struct {
	window time.Duration
}

func NewRateLimiter() *RateLimiter {
	window := viper.GetDuration("bot.rate_limit")
	if window <= 0 {
		window = DefaultRateLimitWindow
	}

	return &RateLimiter{window: window}
}

// Admit checks the session's last request time and stamps it on success.
// Rejection leaves the session untouched. The caller holds the session lock.
func (r *RateLimiter) Admit(session *domain.Session) bool {
	if !session.LastRequest.IsZero() && time.Since(session.LastRequest) < r.window {
		return false
	}

	session.LastRequest = time.Now()

	return true
}

// Window returns the configured admission window.
func (r *RateLimiter) Window() time.Duration {
	return r.window
}
