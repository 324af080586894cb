// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// githubAPIVersion is sent as X-GitHub-Api-Version on every request.
const githubAPIVersion = "2022-11-28"

// defaultBaseURL is the base URL for the public GitHub API.
const defaultBaseURL = "https://api.github.com"

// defaultUserAgent is sent when Config.UserAgent is empty. GitHub
// rejects requests without a User-Agent.
const defaultUserAgent = "ghreact"

// maxResponseSize bounds response body reads at 1 MB. A full page of
// 100 reactions is well under 100 KB.
const maxResponseSize int64 = 1 << 20

// Config holds configuration for creating a GitHub API Client. The
// values are copied at construction; a Client never changes them.
//
// Exactly one of Token and TokenSource must be set.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". GitHub Enterprise Server installations
	// use "https://<host>/api/v3". Must use HTTPS.
	BaseURL string

	// Token is a personal access token or fine-grained token.
	Token string

	// TokenSource supplies the bearer token for each request. The client
	// calls Token on every request and does no caching or refreshing of
	// its own; wrap with oauth2.ReuseTokenSource if that is wanted.
	TokenSource oauth2.TokenSource

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Timeout bounds each call whose context carries no deadline. Zero
	// means no default bound. A caller that needs a different limit for
	// one call sets a deadline on that call's context.
	Timeout time.Duration

	// UserAgent is sent on every request. Defaults to "ghreact".
	UserAgent string

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the GitHub reactions API. It holds only
// immutable configuration and is safe for concurrent use as long as
// the configured HTTP client and token source are.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	timeout     time.Duration
	userAgent   string
	logger      *slog.Logger
}

// NewClient creates a GitHub API client from the given configuration.
// Returns an error if the configuration is invalid (no or conflicting
// authentication, non-HTTPS URL).
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}

	hasToken := config.Token != ""
	hasSource := config.TokenSource != nil
	if hasToken && hasSource {
		return nil, fmt.Errorf("github: cannot configure both Token and TokenSource")
	}
	if !hasToken && !hasSource {
		return nil, fmt.Errorf("github: no authentication configured (set Token or TokenSource)")
	}
	if config.Timeout < 0 {
		return nil, fmt.Errorf("github: Timeout must not be negative (got %s)", config.Timeout)
	}

	tokenSource := config.TokenSource
	if hasToken {
		tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		tokenSource: tokenSource,
		timeout:     config.Timeout,
		userAgent:   userAgent,
		logger:      logger,
	}, nil
}

// response is a fully read HTTP response.
type response struct {
	statusCode int
	body       []byte
}

// do executes one authenticated request. The path is relative to the
// base URL and may carry a query string. requestBody, when non-nil, is
// sent as JSON.
//
// Connection failures are returned as *TransportError. Any status code
// outside 2xx is returned as *APIError; callers narrow the accepted 2xx
// codes themselves with expectStatus.
func (client *Client) do(ctx context.Context, method, path string, requestBody []byte) (*response, error) {
	if client.timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, client.timeout)
			defer cancel()
		}
	}

	var bodyReader io.Reader
	if requestBody != nil {
		bodyReader = bytes.NewReader(requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("github: creating request: %w", err)
	}

	token, err := client.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("github: authentication: %w", err)
	}
	token.SetAuthHeader(request)

	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	request.Header.Set("User-Agent", client.userAgent)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	httpResponse, err := client.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResponse.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	client.logger.Debug("github request",
		"method", method,
		"path", path,
		"status", httpResponse.StatusCode,
		"duration", time.Since(started),
	)

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return nil, parseAPIError(httpResponse.StatusCode, body)
	}

	return &response{
		statusCode: httpResponse.StatusCode,
		body:       body,
	}, nil
}

// expectStatus returns an *APIError unless the response status is one
// of accepted. GitHub documents exact success codes per endpoint; a
// different 2xx means the endpoint did something this client does not
// understand.
func (result *response) expectStatus(accepted ...int) error {
	for _, code := range accepted {
		if result.statusCode == code {
			return nil
		}
	}
	apiError := parseAPIError(result.statusCode, result.body)
	apiError.Message = fmt.Sprintf("unexpected status (want %v): %s", accepted, apiError.Message)
	return apiError
}

// parseAPIError builds an *APIError from a status code and response
// body, extracting GitHub's structured error fields when present.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, Body: body}

	var wireError struct {
		Message          string            `json:"message"`
		DocumentationURL string            `json:"documentation_url"`
		Errors           []ValidationError `json:"errors"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
		apiError.Errors = wireError.Errors
	} else {
		apiError.Message = strings.TrimSpace(string(body))
		if apiError.Message == "" {
			apiError.Message = http.StatusText(statusCode)
		}
	}

	return apiError
}
