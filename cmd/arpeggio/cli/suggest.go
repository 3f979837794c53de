// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestCommand returns the closest subcommand name to the given input,
// or "" if nothing is close enough to be a plausible typo.
func suggestCommand(input string, subcommands []*Command) string {
	best := ""
	bestDistance := 4 // only suggest when distance <= 3

	for _, sub := range subcommands {
		distance := levenshtein(input, sub.Name)
		if distance < bestDistance {
			bestDistance = distance
			best = sub.Name
		}
	}
	return best
}

// suggestFlag scans args for the first flag that is not defined in flagSet
// and returns the closest defined flag name (with dashes), or "" if nothing
// is close enough.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	defined := make(map[string]bool)
	var names []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined[f.Name] = true
		names = append(names, f.Name)
		if f.Shorthand != "" {
			defined[f.Shorthand] = true
		}
	})

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		// Strip "=value" if present.
		if i := strings.Index(name, "="); i >= 0 {
			name = name[:i]
		}
		if name == "" || defined[name] {
			continue
		}

		best := ""
		bestDistance := 4
		for _, candidate := range names {
			distance := levenshtein(name, candidate)
			if distance < bestDistance {
				bestDistance = distance
				best = candidate
			}
		}
		if best != "" {
			if len(best) == 1 {
				return "-" + best
			}
			return "--" + best
		}
		// Only consider the first unknown flag.
		return ""
	}
	return ""
}

// levenshtein computes the edit distance between two strings using a
// single-row dynamic programming table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string to minimize the row size.
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		previous := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			current := row[i]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[i] = minInt(row[i]+1, row[i-1]+1, previous+cost)
			previous = current
		}
	}
	return row[len(a)]
}

func minInt(values ...int) int {
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
