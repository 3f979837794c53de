// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the Spotify Web API.
// Spotify wraps errors in a regular envelope:
//
//	{"error": {"status": 404, "message": "Not found."}}
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from Spotify.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("spotify: HTTP %d: %s", err.StatusCode, err.Message)
}

// AuthError represents an error response from the accounts token
// endpoint, which uses the OAuth2 error envelope:
//
//	{"error": "invalid_grant", "error_description": "Refresh token revoked"}
type AuthError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Code is the OAuth2 error code (e.g., "invalid_grant",
	// "invalid_client").
	Code string

	// Description is the optional human-readable explanation.
	Description string
}

func (err *AuthError) Error() string {
	if err.Description != "" {
		return fmt.Sprintf("spotify: token endpoint: %s (%s)", err.Code, err.Description)
	}
	return fmt.Sprintf("spotify: token endpoint: %s", err.Code)
}

// IsNotFound reports whether err is a Spotify API 404 Not Found response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a Spotify API 401 response.
// Usually means the access token is missing, expired, or revoked.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is a Spotify API 403 response.
// Returned when the token lacks a required scope or the user's plan
// does not allow the operation (player endpoints require Premium).
func IsForbidden(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusForbidden
}

// IsRateLimited reports whether err is a Spotify API 429 response.
// The client already retries once after the advertised Retry-After;
// this surfaces when the retry was also limited or the backoff was
// too long to honor.
func IsRateLimited(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusTooManyRequests
}

// parseAPIError parses the regular Spotify error envelope from a status
// code and response body. Decode failures degrade to the raw body (or
// the HTTP status text) rather than masking the status code.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Error.Message != "" {
		apiError.Message = wireError.Error.Message
		return apiError
	}

	if message := strings.TrimSpace(string(body)); message != "" {
		apiError.Message = message
		return apiError
	}

	apiError.Message = http.StatusText(statusCode)
	return apiError
}

// parseAuthError parses the OAuth2 error envelope returned by the
// accounts token endpoint.
func parseAuthError(statusCode int, body []byte) *AuthError {
	authError := &AuthError{StatusCode: statusCode}

	var wireError struct {
		Code        string `json:"error"`
		Description string `json:"error_description"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Code != "" {
		authError.Code = wireError.Code
		authError.Description = wireError.Description
		return authError
	}

	if message := strings.TrimSpace(string(body)); message != "" {
		authError.Code = message
		return authError
	}

	authError.Code = http.StatusText(statusCode)
	return authError
}
