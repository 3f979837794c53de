// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/commands"
)

// TestCommandTreeWellFormed walks the full command tree and validates
// the properties dispatch and help rendering rely on: named commands,
// unique sibling names, a summary on everything below the root, and a
// Run function on every leaf.
func TestCommandTreeWellFormed(t *testing.T) {
	root := commands.Root()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if command.Name == "" {
			t.Errorf("%s: command with empty name", name)
		}
		if strings.Contains(command.Name, " ") {
			t.Errorf("%s: command name contains a space", name)
		}
		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing summary", name)
		}
		if len(command.Subcommands) == 0 && command.Run == nil {
			t.Errorf("%s: leaf command without a Run function", name)
		}

		seen := make(map[string]bool)
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", name, sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

func TestRootHelpListsCommands(t *testing.T) {
	var buffer bytes.Buffer
	commands.Root().PrintHelp(&buffer)
	help := buffer.String()

	for _, name := range []string{"search", "get", "browse", "player", "auth", "inspect", "api", "version"} {
		if !strings.Contains(help, name) {
			t.Errorf("root help does not list %q", name)
		}
	}
}

func TestStripVerbose(t *testing.T) {
	tests := []struct {
		args    []string
		want    []string
		verbose bool
	}{
		{[]string{"search", "queen"}, []string{"search", "queen"}, false},
		{[]string{"--verbose", "search", "queen"}, []string{"search", "queen"}, true},
		{[]string{"search", "-v", "queen"}, []string{"search", "queen"}, true},
		{[]string{"-v"}, []string{}, true},
		{nil, []string{}, false},
	}
	for _, test := range tests {
		got, verbose := stripVerbose(test.args)
		if strings.Join(got, "\x00") != strings.Join(test.want, "\x00") {
			t.Errorf("stripVerbose(%v) args = %v, want %v", test.args, got, test.want)
		}
		if verbose != test.verbose {
			t.Errorf("stripVerbose(%v) verbose = %v, want %v", test.args, verbose, test.verbose)
		}
	}
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
