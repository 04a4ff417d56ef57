package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestNewRateLimitedHTTPClient(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := NewRateLimitedHTTPClient()
		assert.Equal(t, http.DefaultClient, c.client)
		assert.Equal(t, DefaultMaxRetries, c.maxRetries)
		assert.Equal(t, DefaultBaseBackoff, c.baseBackoff)
	})

	t.Run("custom", func(t *testing.T) {
		inner := &http.Client{}
		c := NewRateLimitedHTTPClient(
			WithMaxRetries(5),
			WithBaseBackoff(time.Millisecond*100),
			WithHTTPClient(inner),
		)
		assert.Equal(t, inner, c.client)
		assert.Equal(t, 5, c.maxRetries)
		assert.Equal(t, time.Millisecond*100, c.baseBackoff)
	})
}

func TestRateLimitedClient_Do(t *testing.T) {
	t.Run("passes through a successful response", func(t *testing.T) {
		calls := 0
		c := NewRateLimitedHTTPClient(WithHTTPClient(doerFunc(func(req *http.Request) (*http.Response, error) {
			calls++
			return response(http.StatusOK), nil
		})))

		req, err := http.NewRequest(http.MethodGet, "http://example.test", nil)
		require.NoError(t, err)

		resp, err := c.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries a 429 and honors Retry-After", func(t *testing.T) {
		calls := 0
		c := NewRateLimitedHTTPClient(
			WithBaseBackoff(time.Millisecond),
			WithHTTPClient(doerFunc(func(req *http.Request) (*http.Response, error) {
				calls++
				if calls == 1 {
					resp := response(http.StatusTooManyRequests)
					resp.Header.Set("Retry-After", "0")
					return resp, nil
				}
				return response(http.StatusOK), nil
			})),
		)

		req, err := http.NewRequest(http.MethodGet, "http://example.test", nil)
		require.NoError(t, err)

		resp, err := c.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		calls := 0
		c := NewRateLimitedHTTPClient(
			WithMaxRetries(2),
			WithBaseBackoff(time.Millisecond),
			WithHTTPClient(doerFunc(func(req *http.Request) (*http.Response, error) {
				calls++
				resp := response(http.StatusTooManyRequests)
				resp.Header.Set("Retry-After", "0")
				return resp, nil
			})),
		)

		req, err := http.NewRequest(http.MethodGet, "http://example.test", nil)
		require.NoError(t, err)

		_, err = c.Do(req)
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Equal(t, 2, calls)
	})

	t.Run("a cancelled context cuts the backoff short", func(t *testing.T) {
		c := NewRateLimitedHTTPClient(
			WithBaseBackoff(time.Hour),
			WithHTTPClient(doerFunc(func(req *http.Request) (*http.Response, error) {
				return response(http.StatusTooManyRequests), nil
			})),
		)

		ctx, cancel := context.WithCancel(context.Background())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://example.test", nil)
		require.NoError(t, err)

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		_, err = c.Do(req)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
