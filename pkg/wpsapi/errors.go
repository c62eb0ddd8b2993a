package wpsapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// HTTPError reports a platform response with a non-2xx status code. The raw
// body is preserved because the platform's error pages are not guaranteed to
// be JSON.
type HTTPError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("wpsapi: http %d: %s", e.Status, e.Body)
}

// PlatformError reports a 2xx response whose envelope signals failure. Code
// is either the OAuth error code (e.g. "invalid_grant") or the decimal form
// of a non-zero result code.
type PlatformError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("wpsapi: platform error %s", e.Code)
	}
	return fmt.Sprintf("wpsapi: platform error %s: %s", e.Code, e.Message)
}

// envelope is the superset of the platform's two failure shapes: a generic
// OAuth {error, error_description} pair, or a {result, msg} pair where any
// non-zero result signals failure. Result is a pointer so "result absent"
// and "result: 0" stay distinguishable.
type envelope struct {
	Result           *int   `json:"result"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// checkEnvelope normalizes both failure shapes into a PlatformError.
// Returns nil when the envelope signals success.
func checkEnvelope(body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("wpsapi: failed to decode platform response: %w", err)
	}

	if env.Error != "" {
		return &PlatformError{Code: env.Error, Message: env.ErrorDescription}
	}

	if env.Result != nil && *env.Result != 0 {
		return &PlatformError{Code: strconv.Itoa(*env.Result), Message: env.Msg}
	}

	return nil
}
