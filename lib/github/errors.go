// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is matching. The concrete error values
// returned by the client are the typed errors below; each one reports
// itself as matching the corresponding sentinel.
var (
	// ErrNotFound matches an *APIError with status 404.
	ErrNotFound = errors.New("github: not found")

	// ErrInvalidArgument matches an *InvalidArgumentError.
	ErrInvalidArgument = errors.New("github: invalid argument")

	// ErrMalformedResponse matches a *MalformedResponseError.
	ErrMalformedResponse = errors.New("github: malformed response")
)

// APIError represents a response from the GitHub REST API whose status
// code is not one the operation accepts. GitHub returns structured JSON
// error bodies with a message, optional documentation URL, and optional
// field-level validation errors. The raw body is kept verbatim so callers
// can inspect details the structured fields do not capture.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the top-level error description from GitHub, or the
	// raw body when it was not a GitHub error document.
	Message string

	// DocumentationURL points to the relevant API documentation.
	DocumentationURL string

	// Errors contains field-level validation failures. Present only
	// on 422 Unprocessable Entity responses.
	Errors []ValidationError

	// Body is the unmodified response body.
	Body []byte
}

// ValidationError describes a specific validation failure on a resource
// field. Returned by GitHub on 422 responses.
type ValidationError struct {
	Resource string `json:"resource"`
	Code     string `json:"code"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (err *APIError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "github: HTTP %d: %s", err.StatusCode, err.Message)
	for _, validationError := range err.Errors {
		if validationError.Message != "" {
			fmt.Fprintf(&builder, "; %s.%s: %s", validationError.Resource, validationError.Field, validationError.Message)
		} else {
			fmt.Fprintf(&builder, "; %s.%s: %s", validationError.Resource, validationError.Field, validationError.Code)
		}
	}
	return builder.String()
}

// Is reports whether target is ErrNotFound and this is a 404.
func (err *APIError) Is(target error) bool {
	return target == ErrNotFound && err.StatusCode == http.StatusNotFound
}

// TransportError is a connection-level failure: DNS, TCP, TLS, or a
// cancelled context. No response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (err *TransportError) Error() string {
	return fmt.Sprintf("github: %s %s: %v", err.Method, err.Path, err.Err)
}

func (err *TransportError) Unwrap() error { return err.Err }

// MalformedResponseError is a successful response whose body does not
// decode into the expected shape.
type MalformedResponseError struct {
	// Reason describes what was wrong with the body.
	Reason string

	// Body is the offending response body.
	Body []byte
}

func (err *MalformedResponseError) Error() string {
	return "github: malformed response: " + err.Reason
}

func (err *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// InvalidArgumentError is a client-side validation failure detected
// before any request is sent.
type InvalidArgumentError struct {
	// Argument names the offending parameter (e.g. "content", "per_page").
	Argument string

	// Reason explains why the value was rejected.
	Reason string
}

func (err *InvalidArgumentError) Error() string {
	return fmt.Sprintf("github: invalid %s: %s", err.Argument, err.Reason)
}

func (err *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(argument, format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a GitHub API 404 Not Found response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden reports whether err is a GitHub API 403 response. GitHub
// uses 403 both for missing permissions and for exhausted rate limits;
// the message distinguishes them.
func IsForbidden(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusForbidden
}

// IsValidationFailed reports whether err is a GitHub API 422 response
// with field-level validation errors.
func IsValidationFailed(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusUnprocessableEntity
}
