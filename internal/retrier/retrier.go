// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retrier re-invokes failed read operations with linear backoff.
//
// The delay before attempt n+1 is BaseDelay*n (1s, 2s, ... with the default
// policy). There is no jitter and no cap; the loop is bounded only by
// MaxAttempts. Writes must not be wrapped: a retried POST may duplicate its
// side effect on the server.
package retrier

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// DefaultMaxAttempts is the total number of attempts, the first included.
	DefaultMaxAttempts = 3
	// DefaultBaseDelay is the backoff step.
	DefaultBaseDelay = time.Second
)

// Policy configures a retry loop.
type Policy struct {
	// MaxAttempts is the total number of attempts. Values below 1 select
	// DefaultMaxAttempts.
	MaxAttempts int

	// BaseDelay is the linear backoff step. Negative values are treated as 0.
	BaseDelay time.Duration

	// Retryable reports whether err is worth another attempt. Nil retries
	// every error.
	Retryable func(err error) bool
}

// DefaultPolicy returns a policy of three attempts with one-second steps that
// retries every error.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}

// backoff returns a fresh linear backoff for one Do call. go-retry backoffs
// are stateful and must not be shared between loops.
func (p Policy) backoff() retry.Backoff {
	step := p.BaseDelay
	if step < 0 {
		step = 0
	}

	var n time.Duration
	linear := retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return step * n, false
	})

	return retry.WithMaxRetries(uint64(p.attempts()-1), linear)
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts are exhausted. The error of the last attempt is returned
// unmodified. Cancelling ctx stops the loop and returns ctx.Err().
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// Value is Do for operations that produce a result. On failure the zero value
// of T is returned.
func Value[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := Do(ctx, p, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
