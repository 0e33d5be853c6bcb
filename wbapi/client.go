package wbapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Client issues GET requests against the Documents & Reports search endpoint.
// One request per call, no retries: the upstream is a best-effort public
// service and the caller decides whether to re-invoke.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for the given endpoint with a fixed total
// timeout per request.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Fetch performs one GET with the given query parameters and returns the raw
// JSON body. Failures are classified: *UnavailableError for connection or
// timeout errors, *StatusError for non-2xx responses, *FormatError for 2xx
// responses that are not valid JSON.
func (c *Client) Fetch(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("url", reqURL).Msg("upstream request failed")
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Int("bytes", len(body)).
		Msg("upstream request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if !gjson.ValidBytes(body) {
		return nil, &FormatError{Detail: "response body is not valid JSON"}
	}
	return body, nil
}
