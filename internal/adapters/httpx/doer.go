// Package httpx provides the HTTP request executor shared by the provider
// adapters: bounded retries with exponential backoff and a circuit breaker.
package httpx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	DefaultMaxRetries = 3
	DefaultBackoff    = 500 * time.Millisecond
)

// ErrCircuitOpen is returned while the breaker rejects requests to a provider.
var ErrCircuitOpen = errors.New("circuit open")

// Options configures a Doer.
type Options struct {
	// Name labels the breaker and log entries, e.g. "spotify".
	Name        string
	MaxRetries  int
	BaseBackoff time.Duration
	Logger      *zap.Logger
}

// Doer executes requests with retries behind a circuit breaker.
type Doer struct {
	name        string
	httpClient  *http.Client
	maxRetries  int
	baseBackoff time.Duration
	breaker     *gobreaker.CircuitBreaker
	log         *zap.Logger
}

// New constructs a Doer around httpClient.
func New(httpClient *http.Client, opts Options) *Doer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = DefaultBackoff
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	log := opts.Logger.With(zap.String("provider", opts.Name))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Doer{
		name:        opts.Name,
		httpClient:  httpClient,
		maxRetries:  opts.MaxRetries,
		baseBackoff: opts.BaseBackoff,
		breaker:     breaker,
		log:         log,
	}
}

// Do sends req, retrying transport errors, 429 and 5xx responses. A
// non-retryable response is returned as is; the caller closes its body.
func (d *Doer) Do(req *http.Request) (*http.Response, error) {
	out, err := d.breaker.Execute(func() (interface{}, error) {
		return d.doWithRetry(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", d.name, ErrCircuitOpen)
		}
		return nil, err
	}
	return out.(*http.Response), nil
}

func (d *Doer) doWithRetry(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.GetBody == nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: read request body: %w", d.name, err)
		}
		_ = req.Body.Close()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(bodyBytes)), nil
		}
	}

	ctx := req.Context()
	for attempt := 0; attempt < d.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: request canceled: %w", d.name, err)
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("%s: reset request body: %w", d.name, err)
			}
			req.Body = body
		}

		// #nosec G107 -- URL is built from a configured provider base URL
		resp, err := d.httpClient.Do(req)
		retryAfter, retry := shouldRetry(resp, err)
		if !retry {
			return resp, err
		}

		attemptNum := attempt + 1
		if err != nil {
			d.log.Warn("retrying after error",
				zap.Int("attempt", attemptNum), zap.Int("max_attempts", d.maxRetries), zap.Error(err))
		} else {
			d.log.Warn("retrying after status",
				zap.Int("attempt", attemptNum), zap.Int("max_attempts", d.maxRetries), zap.Int("status", resp.StatusCode))
			_ = resp.Body.Close()
		}

		if attempt == d.maxRetries-1 {
			if err != nil {
				return nil, fmt.Errorf("%s: request failed after %d attempts: %w", d.name, d.maxRetries, err)
			}
			return nil, fmt.Errorf("%s: request failed after %d attempts: status %d", d.name, d.maxRetries, resp.StatusCode)
		}

		backoff := d.baseBackoff * time.Duration(1<<attempt)
		if retryAfter > 0 {
			backoff = retryAfter
		}

		if err := sleepWithContext(ctx, backoff); err != nil {
			return nil, fmt.Errorf("%s: %w", d.name, err)
		}
	}

	return nil, fmt.Errorf("%s: request failed after %d attempts", d.name, d.maxRetries)
}

func shouldRetry(resp *http.Response, err error) (time.Duration, bool) {
	if err != nil {
		return 0, true
	}
	if resp == nil {
		return 0, false
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return parseRetryAfter(resp), true
	}

	return 0, false
}

func parseRetryAfter(resp *http.Response) time.Duration {
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if when, err := http.ParseTime(retryAfter); err == nil {
		if until := time.Until(when); until > 0 {
			return until
		}
	}

	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("request canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
