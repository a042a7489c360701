package authy

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hansimehdi/AuthyClient/internal/api"
)

// Status classifies the outcome of an API operation.
type Status string

const (
	// StatusSuccess indicates the operation was accepted by the service.
	StatusSuccess Status = "success"
	// StatusBadRequest indicates the service rejected the request input.
	StatusBadRequest Status = "bad_request"
	// StatusUnauthorized indicates an invalid API key or a rejected token.
	StatusUnauthorized Status = "unauthorized"
	// StatusServiceUnavailable indicates the service is temporarily down.
	StatusServiceUnavailable Status = "service_unavailable"
)

// statusFromHTTP maps an error-range HTTP status onto a Status. 503 and
// 401 have dedicated classifications; everything else, 400 included,
// is treated as a bad request.
func statusFromHTTP(code int) Status {
	switch code {
	case http.StatusServiceUnavailable:
		return StatusServiceUnavailable
	case http.StatusUnauthorized:
		return StatusUnauthorized
	default:
		return StatusBadRequest
	}
}

// Result is the envelope shared by every operation's outcome. RawBody
// always holds the verbatim response body for caller-side diagnostics,
// on the error path as well as on success.
type Result struct {
	Status  Status
	Success bool
	Message string
	RawBody string
	Errors  map[string]string
}

// RegistrationResult is the outcome of RegisterUser. UserID is the
// identifier assigned by the service, promoted from the nested user
// object of the response.
type RegistrationResult struct {
	Result
	UserID string
}

// RemovalResult is the outcome of RemoveUser.
type RemovalResult struct {
	Result
}

// VerificationResult is the outcome of VerifyToken. Token holds the
// service's verdict text ("is valid" on acceptance).
type VerificationResult struct {
	Result
	Token string
}

// MessageResult is the outcome of RequestSMS and RequestCall. Cellphone
// holds the masked destination number when the service reports one.
type MessageResult struct {
	Result
	Cellphone string
}

// flexUserID decodes the user identifier, which the service has
// returned both as a JSON number and as a JSON string.
type flexUserID string

func (f *flexUserID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexUserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id is neither string nor number: %s", data)
	}
	*f = flexUserID(n.String())
	return nil
}

// envelope is the wire shape shared by success and error bodies.
type envelope struct {
	Message   string            `json:"message"`
	Token     string            `json:"token"`
	Cellphone string            `json:"cellphone"`
	Errors    map[string]string `json:"errors"`
	User      *struct {
		ID flexUserID `json:"id"`
	} `json:"user"`
}

// mapResponse parses a raw API response into the shared envelope and
// fills the common result fields. Non-2xx responses derive Status from
// the HTTP code; 2xx responses start out as Success and may be
// reclassified by the caller from payload content.
func mapResponse(op string, resp *api.Response, out *Result) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("parse response body: %w", err)}
	}

	out.RawBody = string(resp.Body)
	out.Message = env.Message
	if len(env.Errors) > 0 {
		out.Errors = env.Errors
	}

	if resp.OK() {
		out.Status = StatusSuccess
		out.Success = true
	} else {
		out.Status = statusFromHTTP(resp.StatusCode)
		out.Success = false
	}

	return &env, nil
}
