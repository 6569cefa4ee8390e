package nomics

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Nomics v1 API root.
	DefaultBaseURL = "https://api.nomics.com/v1"
	// DefaultTimeout applies when no custom HTTP client is supplied.
	DefaultTimeout = 30 * time.Second
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	paidPlans    bool
	failSilently bool
	timeout      time.Duration
	httpClient   *http.Client
	userAgent    string
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
}

// WithPaidPlans marks the API key as belonging to a paid plan, unlocking
// the endpoints that require one.
func WithPaidPlans(paid bool) Option {
	return func(o *clientOptions) {
		o.paidPlans = paid
	}
}

// WithFailSilently turns non-200 responses into a nil result logged at info level.
func WithFailSilently(silent bool) Option {
	return func(o *clientOptions) {
		o.failSilently = silent
	}
}

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
// It has no effect when WithHTTPClient is also used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
