package authy

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hansimehdi/AuthyClient/internal/api"
)

// Base URLs for the two service environments.
const (
	productionBaseURL = "https://api.authy.com"
	sandboxBaseURL    = "https://sandbox-api.authy.com"
)

// Client is a stateless Authy API client. It holds only immutable
// configuration, so a single instance is safe for unsynchronized
// concurrent use.
type Client struct {
	apiClient      *api.Client
	minTokenDigits int
	maxTokenDigits int
}

// New creates a new client with the given API key. The environment is
// resolved once at construction: production by default, sandbox with
// WithSandbox.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		logger:         zerolog.Nop(),
		minTokenDigits: DefaultMinTokenDigits,
		maxTokenDigits: DefaultMaxTokenDigits,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    resolveBaseURL(cfg),
		APIKey:     apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:      apiClient,
		minTokenDigits: cfg.minTokenDigits,
		maxTokenDigits: cfg.maxTokenDigits,
	}, nil
}

// resolveBaseURL picks the environment host. An explicit override wins
// over the sandbox flag.
func resolveBaseURL(cfg *clientConfig) string {
	if cfg.baseURL != "" {
		return cfg.baseURL
	}
	if cfg.sandbox {
		return sandboxBaseURL
	}
	return productionBaseURL
}

// RegisterUser registers a user with the service and returns the
// identifier it assigned. Email and phone format are validated by the
// service, not locally; rejection surfaces as a BadRequest result.
func (c *Client) RegisterUser(ctx context.Context, email, cellphone string, opts ...RegisterOption) (*RegistrationResult, error) {
	cfg := &registerConfig{countryCode: DefaultCountryCode}
	for _, opt := range opts {
		opt(cfg)
	}

	form := url.Values{}
	form.Set("user[email]", email)
	form.Set("user[cellphone]", cellphone)
	form.Set("user[country_code]", strconv.Itoa(cfg.countryCode))

	resp, err := c.apiClient.PostForm(ctx, "/protected/json/users/new", form)
	if err != nil {
		return nil, wrapTransport("register user", err)
	}

	result := &RegistrationResult{}
	env, err := mapResponse("register user", resp, &result.Result)
	if err != nil {
		return nil, err
	}
	if env.User != nil {
		result.UserID = string(env.User.ID)
	}

	return result, nil
}

// RemoveUser removes a registered user. Removal is always forced. The
// id must be non-blank; an empty or whitespace-only id fails locally
// with a ValidationError before any request is made.
func (c *Client) RemoveUser(ctx context.Context, id string) (*RemovalResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "user_id", Message: "cannot be blank"}
	}

	path := fmt.Sprintf("/protected/json/users/%s/remove", url.PathEscape(id))
	form := url.Values{}
	form.Set("force", "true")

	resp, err := c.apiClient.PostForm(ctx, path, form)
	if err != nil {
		return nil, wrapTransport("remove user", err)
	}

	result := &RemovalResult{}
	if _, err := mapResponse("remove user", resp, &result.Result); err != nil {
		return nil, err
	}

	return result, nil
}

// VerifyToken checks a one-time token for a user. A token that fails
// the local length check yields a BadRequest result without touching
// the network. On the happy path the verdict comes from the response
// payload, not the HTTP status: the service reports token state in the
// body of a 200 response.
func (c *Client) VerifyToken(ctx context.Context, userID, token string, opts ...RequestOption) (*VerificationResult, error) {
	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !c.tokenValid(token) {
		return &VerificationResult{Result: Result{
			Status:  StatusBadRequest,
			Message: "Token is invalid.",
			Errors:  map[string]string{"token": "is invalid"},
		}}, nil
	}

	path := fmt.Sprintf("/protected/json/verify/%s/%s",
		digitsOnly(token), digitsOnly(userID))
	query := url.Values{}
	if cfg.force {
		query.Set("force", "true")
	}

	resp, err := c.apiClient.Get(ctx, path, query)
	if err != nil {
		return nil, wrapTransport("verify token", err)
	}

	result := &VerificationResult{}
	env, err := mapResponse("verify token", resp, &result.Result)
	if err != nil {
		return nil, err
	}
	result.Token = env.Token

	// Payload-content check. The transport-error path above takes
	// precedence; here a non-affirmative verdict means the token was
	// rejected even under HTTP 200.
	if resp.OK() {
		if env.Token == "is valid" {
			result.Status = StatusSuccess
			result.Success = true
		} else {
			result.Status = StatusUnauthorized
			result.Success = false
		}
	}

	return result, nil
}

// RequestSMS asks the service to deliver a one-time code over SMS. Any
// non-error response is a Success; the service may report that it
// skipped delivery in the message text, which WithForce overrides.
func (c *Client) RequestSMS(ctx context.Context, userID string, opts ...RequestOption) (*MessageResult, error) {
	cfg := &requestConfig{locale: DefaultLocale}
	for _, opt := range opts {
		opt(cfg)
	}

	path := fmt.Sprintf("/protected/json/sms/%s", digitsOnly(userID))
	query := url.Values{}
	if cfg.force {
		query.Set("force", "true")
	}
	query.Set("locale", cfg.locale)

	return c.requestCode(ctx, "request sms", path, query)
}

// RequestCall asks the service to deliver a one-time code over a phone
// call. Same unconditional-success mapping as RequestSMS.
func (c *Client) RequestCall(ctx context.Context, userID string, opts ...RequestOption) (*MessageResult, error) {
	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	path := fmt.Sprintf("/protected/json/call/%s", digitsOnly(userID))
	query := url.Values{}
	if cfg.force {
		query.Set("force", "true")
	}

	return c.requestCode(ctx, "request call", path, query)
}

func (c *Client) requestCode(ctx context.Context, op, path string, query url.Values) (*MessageResult, error) {
	resp, err := c.apiClient.Get(ctx, path, query)
	if err != nil {
		return nil, wrapTransport(op, err)
	}

	result := &MessageResult{}
	env, err := mapResponse(op, resp, &result.Result)
	if err != nil {
		return nil, err
	}
	result.Cellphone = env.Cellphone

	return result, nil
}
