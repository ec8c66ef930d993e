package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// HTTPClientConfig bundles the HTTP client and outbound pacing settings.
type HTTPClientConfig struct {
	Client    *http.Client
	Limiter   *rate.Limiter
	UserAgent string
}

var errNoHTTPClient = errors.New("http client not configured")

// breakerSuccess reports whether err counts as a success for the circuit breaker.
// Only transport failures count against it; upstream statuses and caller cancellation do not.
func breakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var serverErr *weather.ServerError
	if errors.As(err, &serverErr) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// doRequest executes one HTTP request behind a rate limiter and a circuit breaker.
// There are no retries; callers retry manually. Non-200 responses become
// *weather.ServerError and every other failure wraps weather.ErrFetchFailed.
func doRequest(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func(ctx context.Context) (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("%w: %w", weather.ErrFetchFailed, errNoHTTPClient)
	}

	if cfg.Limiter != nil {
		if err := cfg.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait canceled: %w", weather.ErrFetchFailed, err)
		}
	}

	req, err := buildRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", weather.ErrFetchFailed, err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return nil, &weather.ServerError{StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		var serverErr *weather.ServerError
		if errors.As(err, &serverErr) {
			return nil, serverErr
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker open: %w", weather.ErrFetchFailed, err)
		}
		return nil, fmt.Errorf("%w: %w", weather.ErrFetchFailed, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrFetchFailed)
	}
	return resp, nil
}
