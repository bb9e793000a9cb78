package apperr

import "net/http"

// RequestError carries the status code and message that end up in the
// webhook response envelope. Internal detail stays out of Message so it
// never leaks to the caller.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Validation rejects malformed input or unresolvable lookups (400).
func Validation(message string) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Message: message}
}

// Precondition rejects an entity that is not ready to sync. The outward
// status is 200 with an explanatory message, matching the behavior the
// e-commerce platform's webhook retries depend on.
func Precondition(message string) *RequestError {
	return &RequestError{Status: http.StatusOK, Message: message}
}

// Remote wraps any transport or non-2xx failure from either upstream (500).
func Remote(message string) *RequestError {
	return &RequestError{Status: http.StatusInternalServerError, Message: message}
}

// Conflict marks a duplicate record on the CRM side. Kept at 500 for
// compatibility with existing webhook consumers.
func Conflict(message string) *RequestError {
	return &RequestError{Status: http.StatusInternalServerError, Message: message}
}
