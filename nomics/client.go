package nomics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// Client represents a Nomics API client. It is safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	paidPlans    bool
	failSilently bool
	userAgent    string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient creates a new Nomics client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	u, err := url.Parse(o.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, o.baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: o.timeout,
		}
	}

	return &Client{
		// Ensure baseURL doesn't have trailing slash
		baseURL:      strings.TrimRight(o.baseURL, "/"),
		apiKey:       apiKey,
		paidPlans:    o.paidPlans,
		failSilently: o.failSilently,
		userAgent:    o.userAgent,
		httpClient:   httpClient,
		logger:       logger,
	}, nil
}

// PaidPlans reports whether the client was configured with a paid plan key.
func (c *Client) PaidPlans() bool {
	return c.paidPlans
}

// FailSilently reports whether upstream errors are swallowed.
func (c *Client) FailSilently() bool {
	return c.failSilently
}

// Get issues an authenticated GET request for path with the given query parameters.
// The API key is added to the query automatically and params is left untouched. A
// query string in path is merged with params.
//
// A 200 response returns the JSON body unchanged. Any other status is logged once and
// returned as *UpstreamRequestError, or, when the client fails silently, logged at
// info level and reported as a nil body with a nil error.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	// A query string embedded in path is merged with params so the key is
	// always sent as its own parameter
	ref, err := url.Parse(path)
	if err != nil || ref.IsAbs() || ref.Host != "" || ref.Fragment != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	path = strings.Trim(ref.Path, "/")
	if path == "" {
		return nil, ErrInvalidPath
	}

	q := ref.Query()
	for k, v := range params {
		q[k] = append(q[k], v...)
	}
	q.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL, which includes the key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(path, resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned a non-JSON body", ErrInvalidResponse, path)
	}

	return json.RawMessage(body), nil
}

// handleErrorResponse logs a non-200 response exactly once and decides whether it
// surfaces as an error.
func (c *Client) handleErrorResponse(path string, statusCode int, body []byte) error {
	apiErr := newUpstreamRequestError(statusCode, body)

	if c.failSilently {
		c.logger.Info().
			Int("status", statusCode).
			Str("path", path).
			Msg(apiErr.Error())
		return nil
	}

	c.logger.Warn().
		Int("status", statusCode).
		Str("path", path).
		Msg(apiErr.Error())
	return apiErr
}

// call encodes params and sends them to endpoint, enforcing the paid plan gate first.
func (c *Client) call(ctx context.Context, endpoint Endpoint, params any) (json.RawMessage, error) {
	if endpoint.RequiresPaidPlan() && !c.paidPlans {
		err := &KeyTypeError{Endpoint: endpoint}
		c.logger.Error().
			Str("endpoint", endpoint.Path()).
			Msg(err.Error())
		return nil, err
	}

	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s parameters: %w", endpoint.Path(), err)
	}

	return c.Get(ctx, endpoint.Path(), values)
}
