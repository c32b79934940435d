// Package render implements ports.ImageSource against the orbit-diagram
// rendering service.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/orbitlapse/orbitlapse/internal/domain"
	"github.com/orbitlapse/orbitlapse/internal/ports"
)

// DefaultBaseURL is the rendering service endpoint of a local Solar System
// Live instance.
const DefaultBaseURL = "http://localhost:8080/cgi-bin/Solar"

// Default retry configuration values.
const (
	DefaultAttempts       = 3
	DefaultBackoffBase    = 500 * time.Millisecond
	DefaultBackoffMax     = 5 * time.Second
	DefaultAttemptTimeout = 15 * time.Second
)

// Source fetches rendered orbit diagrams over HTTP. Requests are stateless:
// the date is the only identifying parameter, so a failed attempt can be
// retried without side effects.
type Source struct {
	baseURL        string
	client         ports.HTTPClient
	logger         ports.Logger
	attempts       int
	attemptTimeout time.Duration
	backoffBase    time.Duration
	backoffMax     time.Duration
}

// Option configures a Source.
type Option func(*Source)

// WithAttempts sets the bounded retry count per fetch.
func WithAttempts(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithAttemptTimeout sets the per-attempt timeout.
func WithAttemptTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.attemptTimeout = d
		}
	}
}

// WithBackoff sets the retry backoff window.
func WithBackoff(base, max time.Duration) Option {
	return func(s *Source) {
		s.backoffBase, s.backoffMax = base, max
	}
}

// NewSource creates a Source against the given base URL.
func NewSource(baseURL string, client ports.HTTPClient, logger ports.Logger, opts ...Option) *Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &Source{
		baseURL:        baseURL,
		client:         client,
		logger:         logger,
		attempts:       DefaultAttempts,
		attemptTimeout: DefaultAttemptTimeout,
		backoffBase:    DefaultBackoffBase,
		backoffMax:     DefaultBackoffMax,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves the raw rendered image for the given date. Transport
// failures and timeouts are retried up to the configured attempt count with
// exponential backoff; a well-formed error response from the service is
// immediately fatal for the frame. Both surface as *domain.FetchError.
func (s *Source) Fetch(ctx context.Context, date time.Time) ([]byte, error) {
	u := s.frameURL(date)
	back := newBackoff(s.backoffBase, s.backoffMax)

	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if attempt > 1 {
			if err := back.Wait(ctx); err != nil {
				return nil, &domain.FetchError{Date: date, Attempts: attempt - 1, Cause: lastErr}
			}
		}

		body, status, err := s.attempt(ctx, u)
		if err == nil && status/100 == 2 {
			return body, nil
		}
		if err == nil {
			// The service answered; treat any error status as permanent.
			return nil, &domain.FetchError{Date: date, Status: status}
		}

		lastErr = err
		s.logger.Warn("fetch attempt failed",
			ports.Time("date", date),
			ports.Int("attempt", attempt),
			ports.Err(err),
		)
	}

	return nil, &domain.FetchError{Date: date, Attempts: s.attempts, Cause: lastErr}
}

// attempt performs a single GET with the per-attempt timeout applied.
func (s *Source) attempt(ctx context.Context, u string) ([]byte, int, error) {
	actx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// frameURL builds the stateless request URL identifying the configuration
// for the given date.
func (s *Source) frameURL(date time.Time) string {
	q := url.Values{}
	q.Set("date", "1")
	q.Set("utc", date.Format("2006/01/02 15:04:05"))
	q.Set("img", "-k1")
	q.Set("sys", "-Sf")
	q.Set("imgsize", "1024")
	q.Set("dynimg", "y")
	return s.baseURL + "?" + q.Encode()
}
