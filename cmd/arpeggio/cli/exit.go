// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError carries a process exit code up through the command tree without
// printing anything. main inspects the returned error for an ExitCode method
// and exits with that code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
