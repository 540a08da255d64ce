package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/staffihq/staffi-go/internal/domain"
)

// maxErrorBody caps how much of an error response is buffered. Backend error
// bodies are small JSON objects; anything larger is truncated.
const maxErrorBody = 64 << 10

// APIError is a non-2xx backend response. Message holds the backend's
// structured `{"message": ...}` value when the body had that shape, and is
// empty for plain-text or unexpected bodies.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Is lets errors.Is match 401 responses against domain.ErrAuthorizationRejected.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrAuthorizationRejected && e.StatusCode == http.StatusUnauthorized
}

// errorBody is the backend's error contract: JSON with an optional message.
type errorBody struct {
	Message string `json:"message"`
}

// StatusCheck converts non-2xx responses into *APIError so outer stages react
// to one error shape regardless of whether the failure came from the network
// or from the backend.
func StatusCheck() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			resp, err := next(ctx, req)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode < http.StatusBadRequest {
				return resp, nil
			}

			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			resp.Body.Close()

			apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}
			var parsed errorBody
			// A non-JSON body is fine: the error simply has no message.
			if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil {
				apiErr.Message = parsed.Message
			}
			return nil, apiErr
		}
	}
}

// AsAPIError unwraps err to an *APIError, or returns nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
