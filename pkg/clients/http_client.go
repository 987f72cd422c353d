package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	DefaultTimeout  = 15 * time.Second
	maxResponseSize = 1 << 20
	userAgent       = "chitledger"
)

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrResponseTooLarge        = errors.New("response body too large")
)

// HTTPClientI is the GET-only client the payment poller polls through.
type HTTPClientI interface {
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

// HTTPClient issues context-bound GET requests that ask for JSON and read at most
// maxBody bytes of the response.
type HTTPClient struct {
	client  *http.Client
	maxBody int64
}

// NewHTTPClient returns a client whose requests time out after timeout, or after
// DefaultTimeout when timeout is not positive.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		maxBody: maxResponseSize,
	}
}

// Get sends a GET with the default Accept and User-Agent headers. Entries in headers
// replace the defaults.
func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for key, values := range headers {
		req.Header[key] = values
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(io.LimitReader(resp.Body, h.maxBody+1))
	if err != nil {
		return
	}
	if int64(len(respBody)) > h.maxBody {
		return 0, nil, nil, ErrResponseTooLarge
	}
	statusCode = resp.StatusCode
	respHeaders = resp.Header

	return
}
