package utils

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithBaseURL sets the URL every relative request path is resolved against.
func (c *HTTPClient) WithBaseURL(baseURL string) *HTTPClient {
	c.SetBaseURL(baseURL)
	return c
}

// WithTimeout bounds every request made with the client.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	c.SetTimeout(timeout)
	return c
}

// WithBodySigning adds the [HashHeader] with the HMAC of the request body to
// every request that carries a body. A nil hasher disables signing.
func (c *HTTPClient) WithBodySigning(hasher *Hasher) *HTTPClient {
	if hasher == nil {
		return c
	}

	c.SetPreRequestHook(func(_ *resty.Client, r *http.Request) error {
		if r.Body == nil || r.Body == http.NoBody {
			return nil
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("error reading request body for signing: %w", err)
		}
		r.Body.Close()

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.Header.Set(HashHeader, hasher.SumHex(body))

		return nil
	})

	return c
}
