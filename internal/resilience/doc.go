// Package resilience provides the circuit breaker, keyed rate limiter and
// retry loop used by the Bot API transport.
// Uses sony/gobreaker for circuit breaking and golang.org/x/time/rate for rate limiting.
package resilience
