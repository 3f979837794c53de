// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"strings"
	"testing"
)

func TestPrettyJSON(t *testing.T) {
	pretty, err := prettyJSON([]byte(`{"name":"So What","artists":[{"name":"Miles Davis"}]}`))
	if err != nil {
		t.Fatalf("prettyJSON: %v", err)
	}

	out := string(pretty)
	if !strings.Contains(out, "\n  \"name\": \"So What\"") {
		t.Errorf("output not indented:\n%s", out)
	}
	if !strings.Contains(out, "\n      \"name\": \"Miles Davis\"") {
		t.Errorf("nested object not indented:\n%s", out)
	}
}

func TestPrettyJSONTrimsWhitespace(t *testing.T) {
	pretty, err := prettyJSON([]byte("\n  {\"ok\":true}\n"))
	if err != nil {
		t.Fatalf("prettyJSON: %v", err)
	}
	if got := string(pretty); got != "{\n  \"ok\": true\n}" {
		t.Errorf("output = %q", got)
	}
}

func TestPrettyJSONRejectsNonJSON(t *testing.T) {
	if _, err := prettyJSON([]byte("not json at all")); err == nil {
		t.Fatal("expected error for non-JSON input")
	}
}
