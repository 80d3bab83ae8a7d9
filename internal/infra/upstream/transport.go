package upstream

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Transport performs a single GET against the upstream and reports the
// raw outcome. Implementations must honor ctx cancellation.
type Transport interface {
	Get(ctx context.Context, url string) Outcome
}

// Client is the production Transport: one pooled *http.Client with a
// connect timeout on the dialer and an overall per-attempt timeout.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a transport client. connectTimeout bounds dialing;
// readTimeout bounds the whole attempt including reading the body.
func NewClient(connectTimeout, readTimeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Get issues one GET. Dial, TLS, timeout, and body-read failures are
// reported through Outcome.Err; any HTTP response, whatever its status,
// comes back as status plus body for the classifier to judge.
func (c *Client) Get(ctx context.Context, url string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Outcome{Err: fmt.Errorf("upstream call: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Err: fmt.Errorf("read response: %w", err)}
	}

	return Outcome{Status: resp.StatusCode, Body: body}
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
