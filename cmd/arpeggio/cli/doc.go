// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the arpeggio binary:
// command tree dispatch with typo suggestions, reflection-based flag
// binding, structured help output, and shared helpers for configuration,
// client construction, tables, and JSON output.
package cli
