package acl

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody bounds how much of an error body is read.
const maxErrorBody = 4 << 10

// ErrorResponse is the error payload of a provider, normalized.
//
// Providers disagree on shape:
//
//	LibreTranslate  {"error": "Invalid API key"}
//	OpenWeatherMap  {"cod": 401, "message": "Invalid API key. ..."}
//	generic         {"error": {"code": "...", "message": "..."}}
type ErrorResponse struct {
	Code    string
	Message string
}

type rawErrorResponse struct {
	Error   jsoniter.RawMessage `json:"error"`
	Cod     jsoniter.RawMessage `json:"cod"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
}

// ParseErrorResponse decodes an error body. It returns nil when the body
// is empty or carries no code or message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var raw rawErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&raw); err != nil {
		return nil
	}

	out := ErrorResponse{Code: raw.Code, Message: raw.Message}

	if len(raw.Cod) > 0 {
		out.Code = strings.Trim(string(raw.Cod), `"`)
	}

	if len(raw.Error) > 0 {
		var msg string
		if err := json.Unmarshal(raw.Error, &msg); err == nil {
			out.Message = msg
		} else {
			var nested struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(raw.Error, &nested); err == nil {
				out.Code = nested.Code
				out.Message = nested.Message
			}
		}
	}

	if out.Code == "" && out.Message == "" {
		return nil
	}

	return &out
}

// MapHTTPError maps a failed provider call to a domain error. clientErr is
// the transport error, if any; otherwise resp is a non-2xx response.
//
// Every outcome a caller should degrade on becomes domain.ErrUnavailable,
// including bad credentials: a misconfigured key must not break the pipeline.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	message := defaultMessageForStatus(resp.StatusCode, operation)
	if errResp := ParseErrorResponse(resp.Body); errResp != nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, operation)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValidationError(operation, message)
	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName, "circuit breaker open during "+operation)
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "provider rejected credentials"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
