// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// JSONOutput is embedded in command params structs to provide a uniform
// --json flag. Commands call EmitJSON early in their Run function; when it
// reports true the command skips its human-readable rendering.
type JSONOutput struct {
	OutputJSON bool `json:"-" flag:"json" desc:"output as JSON"`
}

// EmitJSON writes result as indented JSON to stdout when --json was set.
// The boolean reports whether output was handled.
func (j *JSONOutput) EmitJSON(result any) (bool, error) {
	if !j.OutputJSON {
		return false, nil
	}
	if err := WriteJSON(result); err != nil {
		return true, err
	}
	return true, nil
}

// WriteJSON writes v as indented JSON to stdout, normalizing nil slices to
// empty arrays so consumers always see "[]" rather than "null".
func WriteJSON(v any) error {
	v = normalizeNilSlice(v)
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// normalizeNilSlice replaces a nil slice with an empty one of the same type
// so it serializes as [] instead of null.
func normalizeNilSlice(v any) any {
	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Slice && value.IsNil() {
		return reflect.MakeSlice(value.Type(), 0, 0).Interface()
	}
	return v
}
