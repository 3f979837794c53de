// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlagsBasicTypes(t *testing.T) {
	params := struct {
		Name     string        `flag:"name" desc:"a string"`
		Enabled  bool          `flag:"enabled" desc:"a bool"`
		Count    int           `flag:"count" desc:"an int"`
		Big      int64         `flag:"big" desc:"an int64"`
		Ratio    float64       `flag:"ratio" desc:"a float"`
		Wait     time.Duration `flag:"wait" desc:"a duration"`
		Kinds    []string      `flag:"kinds" desc:"a string slice"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--name", "abc",
		"--enabled",
		"--count", "7",
		"--big", "9000000000",
		"--ratio", "0.5",
		"--wait", "2s",
		"--kinds", "track,album",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Name != "abc" {
		t.Errorf("Name = %q, want %q", params.Name, "abc")
	}
	if !params.Enabled {
		t.Error("Enabled = false, want true")
	}
	if params.Count != 7 {
		t.Errorf("Count = %d, want 7", params.Count)
	}
	if params.Big != 9000000000 {
		t.Errorf("Big = %d, want 9000000000", params.Big)
	}
	if params.Ratio != 0.5 {
		t.Errorf("Ratio = %v, want 0.5", params.Ratio)
	}
	if params.Wait != 2*time.Second {
		t.Errorf("Wait = %v, want 2s", params.Wait)
	}
	if len(params.Kinds) != 2 || params.Kinds[0] != "track" || params.Kinds[1] != "album" {
		t.Errorf("Kinds = %v, want [track album]", params.Kinds)
	}
}

func TestBindFlagsDefaults(t *testing.T) {
	params := struct {
		Limit  int      `flag:"limit" default:"20" desc:"limit"`
		Market string   `flag:"market" default:"US" desc:"market"`
		Kinds  []string `flag:"kinds" default:"track,artist" desc:"kinds"`
		Force  bool     `flag:"force" default:"true" desc:"force"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Limit != 20 {
		t.Errorf("Limit = %d, want 20", params.Limit)
	}
	if params.Market != "US" {
		t.Errorf("Market = %q, want %q", params.Market, "US")
	}
	if len(params.Kinds) != 2 || params.Kinds[0] != "track" || params.Kinds[1] != "artist" {
		t.Errorf("Kinds = %v, want [track artist]", params.Kinds)
	}
	if !params.Force {
		t.Error("Force = false, want true")
	}
}

func TestBindFlagsOverrideDefault(t *testing.T) {
	params := struct {
		Limit int `flag:"limit" default:"20" desc:"limit"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--limit", "3"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Limit != 3 {
		t.Errorf("Limit = %d, want 3", params.Limit)
	}
}

func TestBindFlagsShorthand(t *testing.T) {
	params := struct {
		Query string `flag:"query,q" desc:"search query"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"-q", "miles"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Query != "miles" {
		t.Errorf("Query = %q, want %q", params.Query, "miles")
	}
}

type testBinder struct {
	Added bool
}

func (b *testBinder) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&b.Added, "added", false, "set by binder")
}

func TestBindFlagsFlagBinderField(t *testing.T) {
	params := struct {
		Binder testBinder
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--added"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.Binder.Added {
		t.Error("FlagBinder field was not bound")
	}
}

func TestBindFlagsEmbeddedJSONOutput(t *testing.T) {
	params := struct {
		JSONOutput
		Limit int `flag:"limit" default:"10" desc:"limit"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.OutputJSON {
		t.Error("embedded JSONOutput flag was not bound")
	}
	if params.Limit != 10 {
		t.Errorf("Limit = %d, want 10", params.Limit)
	}
}

func TestBindFlagsAnonymousStructRecursion(t *testing.T) {
	type inner struct {
		Deep string `flag:"deep" desc:"nested field"`
	}
	params := struct {
		inner
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--deep", "value"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Deep != "value" {
		t.Errorf("Deep = %q, want %q", params.Deep, "value")
	}
}

func TestBindFlagsNotPointer(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(flagSet, struct{}{})
	if err == nil {
		t.Fatal("expected error for non-pointer params")
	}
	if !strings.Contains(err.Error(), "params must be a pointer to a struct") {
		t.Errorf("error = %q, want pointer-to-struct message", err)
	}
}

func TestBindFlagsBadDefault(t *testing.T) {
	params := struct {
		Limit int `flag:"limit" default:"not-a-number" desc:"limit"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(flagSet, &params)
	if err == nil {
		t.Fatal("expected error for invalid default")
	}
	if !strings.Contains(err.Error(), "invalid int default") {
		t.Errorf("error = %q, want invalid default message", err)
	}
}

func TestBindFlagsUntaggedFieldSkipped(t *testing.T) {
	params := struct {
		Tagged   string `flag:"tagged" desc:"bound"`
		Untagged string
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if flagSet.Lookup("tagged") == nil {
		t.Error("tagged field was not bound")
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound, want skipped")
	}
}

func TestBindFlagsPositionalArgsRemain(t *testing.T) {
	params := struct {
		Limit int `flag:"limit" default:"20" desc:"limit"`
	}{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flagSet, &params); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--limit", "5", "first", "second"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	args := flagSet.Args()
	if len(args) != 2 || args[0] != "first" || args[1] != "second" {
		t.Errorf("Args = %v, want [first second]", args)
	}
}

func TestFlagsFromParamsPanicsOnBadParams(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered == nil {
			t.Fatal("expected panic for invalid params")
		}
	}()
	FlagsFromParams("test", struct{}{})
}
