// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"fmt"
	"net/http"
	"testing"
)

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{
			name:        "standard envelope",
			statusCode:  404,
			body:        `{"error":{"status":404,"message":"Not found."}}`,
			wantMessage: "Not found.",
		},
		{
			name:        "non-JSON body",
			statusCode:  502,
			body:        "  bad gateway\n",
			wantMessage: "bad gateway",
		},
		{
			name:        "empty body",
			statusCode:  503,
			body:        "",
			wantMessage: "Service Unavailable",
		},
		{
			name:        "JSON without envelope",
			statusCode:  500,
			body:        `{"unexpected":"shape"}`,
			wantMessage: `{"unexpected":"shape"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			apiError := parseAPIError(test.statusCode, []byte(test.body))
			if apiError.StatusCode != test.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiError.StatusCode, test.statusCode)
			}
			if apiError.Message != test.wantMessage {
				t.Errorf("Message = %q, want %q", apiError.Message, test.wantMessage)
			}
		})
	}
}

func TestAPIErrorString(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not found."}
	if got := err.Error(); got != "spotify: HTTP 404: Not found." {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseAuthError(t *testing.T) {
	authError := parseAuthError(400, []byte(`{"error":"invalid_grant","error_description":"Refresh token revoked"}`))
	if authError.Code != "invalid_grant" {
		t.Errorf("Code = %q", authError.Code)
	}
	if authError.Description != "Refresh token revoked" {
		t.Errorf("Description = %q", authError.Description)
	}
	if got := authError.Error(); got != "spotify: token endpoint: invalid_grant (Refresh token revoked)" {
		t.Errorf("Error() = %q", got)
	}

	bare := parseAuthError(400, []byte(`{"error":"invalid_client"}`))
	if got := bare.Error(); got != "spotify: token endpoint: invalid_client" {
		t.Errorf("Error() = %q", got)
	}

	degraded := parseAuthError(500, nil)
	if degraded.Code != http.StatusText(500) {
		t.Errorf("Code = %q", degraded.Code)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		statusCode int
		predicate  func(error) bool
		name       string
	}{
		{http.StatusNotFound, IsNotFound, "IsNotFound"},
		{http.StatusUnauthorized, IsUnauthorized, "IsUnauthorized"},
		{http.StatusForbidden, IsForbidden, "IsForbidden"},
		{http.StatusTooManyRequests, IsRateLimited, "IsRateLimited"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matching := fmt.Errorf("getting thing: %w", &APIError{StatusCode: test.statusCode, Message: "x"})
			if !test.predicate(matching) {
				t.Errorf("%s should match a wrapped %d", test.name, test.statusCode)
			}

			other := fmt.Errorf("getting thing: %w", &APIError{StatusCode: http.StatusTeapot, Message: "x"})
			if test.predicate(other) {
				t.Errorf("%s should not match status 418", test.name)
			}

			if test.predicate(fmt.Errorf("plain error")) {
				t.Errorf("%s should not match a non-API error", test.name)
			}
		})
	}
}
