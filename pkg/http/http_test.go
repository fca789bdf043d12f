package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestWithDefaults(t *testing.T) {
	cfg := ClientConfig{Retries: -1}.withDefaults()
	gt.Equal(t, cfg.Timeout, DefaultTimeout)
	gt.Equal(t, cfg.Retries, 0)
	gt.Equal(t, cfg.RetryWait, DefaultRetryWait)
	gt.Equal(t, cfg.UserAgent, DefaultUserAgent)
}

func TestGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Header.Get("X-Trace"), "abc")
			gt.Equal(t, r.Header.Get("User-Agent"), DefaultUserAgent)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second})
		body, status, err := c.Get(context.Background(), srv.URL, map[string]string{"X-Trace": "abc"})
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)
		gt.Equal(t, string(body), `{"status":"ok"}`)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 2, RetryWait: time.Millisecond})
		_, status, err := c.Get(context.Background(), srv.URL, nil)
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)
		gt.Equal(t, calls.Load(), int32(3))
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
		_, status, err := c.Get(context.Background(), srv.URL, nil)
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusNotFound)
		gt.Equal(t, calls.Load(), int32(1))
	})

	t.Run("last server error is returned", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 1, RetryWait: time.Millisecond})
		_, status, err := c.Get(context.Background(), srv.URL, nil)
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusServiceUnavailable)
		gt.Equal(t, calls.Load(), int32(2))
	})

	t.Run("transport error", func(t *testing.T) {
		c := NewClient(ClientConfig{Timeout: 200 * time.Millisecond})
		_, _, err := c.Get(context.Background(), "http://127.0.0.1:1", nil)
		gt.Error(t, err)
	})
}
