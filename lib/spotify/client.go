// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/clock"
	"github.com/arpeggio-project/arpeggio/lib/netutil"
	"github.com/arpeggio-project/arpeggio/lib/version"
)

// defaultBaseURL is the base URL for the Spotify Web API.
const defaultBaseURL = "https://api.spotify.com/v1"

// maxRetryAfter bounds how long the client will sleep on a 429 before
// retrying. A longer advertised Retry-After is surfaced as the error
// instead; an interactive caller should not hang for minutes.
const maxRetryAfter = 30 * time.Second

// Config holds configuration for creating a Spotify API Client.
type Config struct {
	// Authenticator supplies Authorization headers. Required. See
	// NewClientCredentials, NewAuthorizationCode, and NewStaticToken.
	Authenticator Authenticator

	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.spotify.com/v1". Must use HTTPS.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// UserAgent overrides the User-Agent header. Defaults to the
	// build's version string.
	UserAgent string

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.NewFake() in tests for deterministic backoff.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed Spotify Web API client with automatic
// authentication, 429 backoff, pagination, and structured error
// handling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	auth       Authenticator
	userAgent  string
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a Spotify API client from the given configuration.
// Returns an error if the configuration is invalid (no authenticator,
// non-HTTPS URL).
func NewClient(config Config) (*Client, error) {
	if config.Authenticator == nil {
		return nil, fmt.Errorf("spotify: no authenticator configured")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	// Enforce HTTPS. Requests carry bearer tokens.
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("spotify: API client requires HTTPS (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		auth:       config.Authenticator,
		userAgent:  userAgent,
		clock:      clk,
		logger:     logger,
	}, nil
}

// do executes an authenticated API request. The path should be relative
// to the base URL (e.g., "/tracks/4iV5W9uYEdYUVa79Axb7Rh"). For non-GET
// requests, the body is JSON-encoded from the provided value (pass nil
// for no body).
//
// Returns the response body as raw bytes; 204 responses yield an empty
// slice. On non-2xx responses, returns an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	return client.doWithRetry(ctx, method, client.baseURL+path, requestBody, false)
}

// doWithRetry is the internal implementation of do with a retry flag to
// prevent unbounded recursion on persistent rate limiting. It takes an
// absolute URL so pagers can follow next hrefs through the same path.
func (client *Client) doWithRetry(ctx context.Context, method, requestURL string, requestBody any, isRetry bool) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("spotify: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("spotify: creating request: %w", err)
	}

	authHeader, err := client.auth.AuthorizationHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify: authentication: %w", err)
	}
	request.Header.Set("Authorization", authHeader)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", client.userAgent)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("spotify: %s %s: %w", method, requestURL, err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("spotify: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		// Rate limited; honor Retry-After once, within bounds.
		if !isRetry && response.StatusCode == http.StatusTooManyRequests {
			retryDuration := retryAfterDuration(response.Header)
			if retryDuration > 0 && retryDuration <= maxRetryAfter {
				client.logger.Warn("rate limited, backing off",
					"duration", retryDuration,
					"method", method,
					"url", requestURL,
				)

				select {
				case <-client.clock.After(retryDuration):
				case <-ctx.Done():
					return nil, ctx.Err()
				}

				return client.doWithRetry(ctx, method, requestURL, requestBody, true)
			}
		}

		return nil, parseAPIError(response.StatusCode, body)
	}

	return body, nil
}

// Raw executes an authenticated request against an arbitrary API path
// and returns the raw response body. The path must start with "/" and is
// resolved against the client's base URL. Used by callers that want the
// wire JSON rather than decoded models.
func (client *Client) Raw(ctx context.Context, method, path string) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return client.do(ctx, method, path, nil)
}

// get is a convenience method for GET requests that return a single
// JSON object. Decodes the response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// post is a convenience method for POST requests.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// put is a convenience method for PUT requests.
func (client *Client) put(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// del is a convenience method for DELETE requests. Some endpoints
// (playlist item removal) take a JSON body on DELETE.
func (client *Client) del(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodDelete, path, requestBody)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// decodeBody unmarshals a response body into result. Player endpoints
// return 204 with no body on success; an empty body decodes to nothing.
func decodeBody(body []byte, result any) error {
	if result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("spotify: decoding response: %w", err)
	}
	return nil
}

// retryAfterDuration parses the Retry-After header (whole seconds) from
// a 429 response. Returns zero if absent or malformed.
func retryAfterDuration(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// buildPath appends encoded query parameters to a base path. Returns the
// base path unchanged when there are no parameters.
func buildPath(basePath string, query url.Values) string {
	if len(query) == 0 {
		return basePath
	}
	return basePath + "?" + query.Encode()
}
