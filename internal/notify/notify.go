// Package notify delivers SMS for the SafeReach backend.
//
// A Client is built once in main from configuration and handed to the
// services that need it. It stacks three layers over a provider:
// a circuit breaker, a bounded retry, and the provider itself (Twilio in
// production, Log in development). Close drains in-flight sends on shutdown.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Sender sends one SMS and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(ctx context.Context, to, body string) (string, error)

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, to, body string) (string, error) {
	return f(ctx, to, body)
}

// ErrClosed is returned by Client.Send after Close has been called.
var ErrClosed = errors.New("notify: client closed")

// Options configures a Client.
type Options struct {
	// Retries is the number of extra attempts after a transient failure.
	// Unlike the other fields, zero is taken literally and disables retrying.
	Retries uint64
	// RetryBase is the first backoff delay; later delays double.
	RetryBase time.Duration
	// BreakerThreshold is the number of consecutive transient failures
	// that opens the breaker.
	BreakerThreshold uint32
	// BreakerCooldown is how long the breaker stays open before probing.
	BreakerCooldown time.Duration
}

// DefaultOptions are what main passes to New. Any zero field other than
// Retries falls back to the value here.
var DefaultOptions = Options{
	Retries:          2,
	RetryBase:        250 * time.Millisecond,
	BreakerThreshold: 5,
	BreakerCooldown:  30 * time.Second,
}

// Client is the process-wide SMS sender.
type Client struct {
	next Sender

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

// New wraps provider with retry and circuit breaking.
func New(provider Sender, opts Options) *Client {
	opts = opts.withDefaults()
	retrying := NewRetrying(provider, opts.Retries, opts.RetryBase)
	breaker := NewBreaker("sms", retrying, opts.BreakerThreshold, opts.BreakerCooldown)
	return &Client{next: breaker}
}

// Send delivers body to one recipient.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return "", ErrClosed
	}
	c.inflight.Add(1)
	c.mu.RUnlock()
	defer c.inflight.Done()

	return c.next.Send(ctx, to, body)
}

// Close stops accepting new sends and waits for in-flight ones to finish,
// or for ctx to expire.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notify.Client.Close: %w", ctx.Err())
	}
}

func (o Options) withDefaults() Options {
	if o.RetryBase == 0 {
		o.RetryBase = DefaultOptions.RetryBase
	}
	if o.BreakerThreshold == 0 {
		o.BreakerThreshold = DefaultOptions.BreakerThreshold
	}
	if o.BreakerCooldown == 0 {
		o.BreakerCooldown = DefaultOptions.BreakerCooldown
	}
	return o
}
