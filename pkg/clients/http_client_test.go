package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/payments/ref-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "abc", r.Header.Get("X-Request-Id"))
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("X-Request-Id", "abc")

	status, body, respHeaders, err := NewHTTPClient(time.Second).Get(context.Background(), server.URL+"/api/payments/ref-1", headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.JSONEq(t, `{"status":"pending"}`, string(body))
	assert.Equal(t, "5", respHeaders.Get("Retry-After"))
}

func TestHTTPClient_HeadersOverrideDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("Accept", "text/plain")

	status, body, _, err := NewHTTPClient(0).Get(context.Background(), server.URL, headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)
}

func TestHTTPClient_ResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	client := NewHTTPClient(time.Second)
	client.maxBody = 16

	status, body, _, err := client.Get(context.Background(), server.URL, nil)
	assert.ErrorIs(t, err, ErrResponseTooLarge)
	assert.Zero(t, status)
	assert.Nil(t, body)
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient(time.Second).Get(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, _, _, err := NewHTTPClient(50*time.Millisecond).Get(context.Background(), server.URL, nil)
	assert.Error(t, err)
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewHTTPClient(0).client.Timeout)
	assert.Equal(t, DefaultTimeout, NewHTTPClient(-time.Second).client.Timeout)
	assert.Equal(t, 3*time.Second, NewHTTPClient(3*time.Second).client.Timeout)
}
