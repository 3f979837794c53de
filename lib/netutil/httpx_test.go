// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"fmt"
	"testing"
)

func TestReadResponse(t *testing.T) {
	t.Run("normal body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader([]byte(`{"id":"4iV5W9uYEdYUVa79Axb7Rh"}`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"id":"4iV5W9uYEdYUVa79Axb7Rh"}` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != 0 {
			t.Fatalf("expected empty, got %d bytes", len(data))
		}
	})

	t.Run("oversized body truncates at the limit", func(t *testing.T) {
		oversized := bytes.Repeat([]byte("a"), int(MaxResponseSize)+1024)
		data, err := ReadResponse(bytes.NewReader(oversized))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if int64(len(data)) != MaxResponseSize {
			t.Fatalf("got %d bytes, want %d", len(data), MaxResponseSize)
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		_, err := ReadResponse(&failReader{})
		if err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

// failReader always returns an error on Read.
type failReader struct{}

func (*failReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}
