package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter bounds how fast this client is allowed to hit the backend API.
type Limiter interface {
	Allow() bool
	Wait(ctx context.Context) error
}

// ClientLimiter is a token-bucket limiter shared by every outbound request.
// A scroll burst through a feed can fire dozens of like/detail fetches at
// once; the bucket absorbs the burst and smooths the rest.
type ClientLimiter struct {
	limiter *rate.Limiter
}

// NewClientLimiter creates a limiter allowing perSecond sustained requests
// with the given burst size.
func NewClientLimiter(perSecond int, burst int) *ClientLimiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &ClientLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

var _ Limiter = (*ClientLimiter)(nil)

// Allow reports whether a request may proceed immediately.
func (l *ClientLimiter) Allow() bool {
	return l.limiter.Allow()
}

// Wait blocks until a request may proceed or the context is cancelled.
func (l *ClientLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
