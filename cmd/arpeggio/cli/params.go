// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// FlagBinder lets a struct field contribute its own flags to a command's
// flag set. Fields whose types implement FlagBinder are bound via AddFlags
// instead of per-field `flag:` tags.
type FlagBinder interface {
	AddFlags(flagSet *pflag.FlagSet)
}

// FlagsFromParams builds a pflag.FlagSet from the tagged fields of a params
// struct. It panics on malformed tags since those are programming errors.
//
// Supported tags:
//
//	flag:"name" or flag:"name,n" - flag name and optional shorthand
//	desc:"help text"             - flag description
//	default:"value"              - default value (parsed per field type)
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(flagSet, params); err != nil {
		panic(fmt.Sprintf("cli: binding flags for %s: %v", name, err))
	}
	return flagSet
}

// BindFlags registers flags on flagSet for each tagged field of params,
// which must be a pointer to a struct.
func BindFlags(flagSet *pflag.FlagSet, params any) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStructFields(flagSet, value.Elem())
}

func bindStructFields(flagSet *pflag.FlagSet, structValue reflect.Value) error {
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		// Struct fields implementing FlagBinder bind themselves.
		if field.Type.Kind() == reflect.Struct && field.IsExported() && fieldValue.CanAddr() {
			if binder, ok := fieldValue.Addr().Interface().(FlagBinder); ok {
				binder.AddFlags(flagSet)
				continue
			}
			// Anonymous embedded structs recurse so their tagged fields
			// land on the same flag set.
			if field.Anonymous {
				if err := bindStructFields(flagSet, fieldValue); err != nil {
					return err
				}
				continue
			}
		}

		tag, ok := field.Tag.Lookup("flag")
		if !ok {
			continue
		}
		name, shorthand := parseFlagTag(tag)
		if name == "" {
			return fmt.Errorf("field %s has empty flag name", field.Name)
		}

		description := field.Tag.Get("desc")
		defaultValue := field.Tag.Get("default")

		if err := bindField(flagSet, fieldValue, field, name, shorthand, description, defaultValue); err != nil {
			return err
		}
	}
	return nil
}

// parseFlagTag splits a flag tag into name and optional shorthand.
func parseFlagTag(tag string) (name, shorthand string) {
	name, shorthand, _ = strings.Cut(tag, ",")
	return strings.TrimSpace(name), strings.TrimSpace(shorthand)
}

func bindField(flagSet *pflag.FlagSet, fieldValue reflect.Value, field reflect.StructField, name, shorthand, description, defaultValue string) error {
	if !fieldValue.CanAddr() {
		return fmt.Errorf("field %s is not addressable", field.Name)
	}

	switch pointer := fieldValue.Addr().Interface().(type) {
	case *string:
		flagSet.StringVarP(pointer, name, shorthand, defaultValue, description)
	case *bool:
		parsed, err := parseBoolDefault(defaultValue, field.Name)
		if err != nil {
			return err
		}
		flagSet.BoolVarP(pointer, name, shorthand, parsed, description)
	case *int:
		parsed, err := parseIntDefault(defaultValue, field.Name)
		if err != nil {
			return err
		}
		flagSet.IntVarP(pointer, name, shorthand, parsed, description)
	case *int64:
		parsed, err := parseInt64Default(defaultValue, field.Name)
		if err != nil {
			return err
		}
		flagSet.Int64VarP(pointer, name, shorthand, parsed, description)
	case *float64:
		parsed, err := parseFloat64Default(defaultValue, field.Name)
		if err != nil {
			return err
		}
		flagSet.Float64VarP(pointer, name, shorthand, parsed, description)
	case *time.Duration:
		parsed, err := parseDurationDefault(defaultValue, field.Name)
		if err != nil {
			return err
		}
		flagSet.DurationVarP(pointer, name, shorthand, parsed, description)
	case *[]string:
		var parsed []string
		if defaultValue != "" {
			parsed = strings.Split(defaultValue, ",")
		}
		flagSet.StringSliceVarP(pointer, name, shorthand, parsed, description)
	default:
		return fmt.Errorf("field %s has unsupported type %s", field.Name, field.Type)
	}
	return nil
}

func parseBoolDefault(value, fieldName string) (bool, error) {
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("field %s has invalid bool default %q: %w", fieldName, value, err)
	}
	return parsed, nil
}

func parseIntDefault(value, fieldName string) (int, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("field %s has invalid int default %q: %w", fieldName, value, err)
	}
	return parsed, nil
}

func parseInt64Default(value, fieldName string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s has invalid int64 default %q: %w", fieldName, value, err)
	}
	return parsed, nil
}

func parseFloat64Default(value, fieldName string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s has invalid float64 default %q: %w", fieldName, value, err)
	}
	return parsed, nil
}

func parseDurationDefault(value, fieldName string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("field %s has invalid duration default %q: %w", fieldName, value, err)
	}
	return parsed, nil
}
