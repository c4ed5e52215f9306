package tutorials

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of a failed response is kept as the message.
const maxErrorBody = 64 * 1024

// RequestError is returned when the API answers with a non-2xx status.
type RequestError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// IsRequestError reports whether err wraps a *RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

func newRequestError(resp *http.Response, requestID string) *RequestError {
	message := ""
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = resp.Status
	}
	return &RequestError{
		Status:    resp.StatusCode,
		Message:   message,
		RequestID: requestID,
	}
}
