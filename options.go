package authy

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCountryCode is the dialing country code used for registration
// when none is given.
const DefaultCountryCode = 1

// DefaultLocale is the message locale used for SMS delivery when none
// is given.
const DefaultLocale = "en"

// Default accepted digit lengths for one-time tokens. The service
// issues 6, 7 or 8 digit tokens depending on account configuration.
const (
	DefaultMinTokenDigits = 6
	DefaultMaxTokenDigits = 8
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	sandbox        bool
	httpClient     *http.Client
	timeout        time.Duration
	logger         zerolog.Logger
	minTokenDigits int
	maxTokenDigits int
}

// registerConfig holds configuration for user registration.
type registerConfig struct {
	countryCode int
}

// requestConfig holds configuration for verification and code delivery.
type requestConfig struct {
	force  bool
	locale string
}

// Option configures the client.
type Option func(*clientConfig)

// RegisterOption configures user registration.
type RegisterOption func(*registerConfig)

// RequestOption configures token verification and code delivery.
type RequestOption func(*requestConfig)

// WithSandbox directs all requests at the service's sandbox
// environment instead of production.
func WithSandbox() Option {
	return func(c *clientConfig) {
		c.sandbox = true
	}
}

// WithBaseURL overrides the resolved base URL. Intended for tests and
// self-hosted proxies; takes precedence over WithSandbox.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default HTTP timeout. Ignored when a custom
// HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger enables structured debug logging of API requests.
// The client is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithTokenLength sets the accepted digit-length range for one-time
// tokens. Default: 6 to 8 digits.
func WithTokenLength(min, max int) Option {
	return func(c *clientConfig) {
		c.minTokenDigits = min
		c.maxTokenDigits = max
	}
}

// WithCountryCode sets the user's dialing country code. Default: 1.
func WithCountryCode(code int) RegisterOption {
	return func(c *registerConfig) {
		c.countryCode = code
	}
}

// WithForce asks the service to verify or deliver even when it would
// normally skip, for example when a code was delivered recently.
func WithForce() RequestOption {
	return func(c *requestConfig) {
		c.force = true
	}
}

// WithLocale sets the SMS message locale. Default: "en". Phone-call
// delivery ignores it.
func WithLocale(locale string) RequestOption {
	return func(c *requestConfig) {
		c.locale = locale
	}
}
