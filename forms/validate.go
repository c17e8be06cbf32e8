package forms

import (
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type FieldError struct {
	Key    string
	Reason string
}

// ValidationError lists every problem found in one submission. Missing keys
// are reported in form order.
type ValidationError struct {
	Missing []string
	Invalid []FieldError
}

func (e *ValidationError) Error() string {
	parts := []string{}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", ")))
	}
	for _, fe := range e.Invalid {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Key, fe.Reason))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

// Validate checks raw submitted values against the schema and converts them to
// typed values. Optional fields left empty are omitted from the result.
func Validate(fields []FormField, raw map[string]any) (Data, error) {
	sorted := SortFields(fields)
	vErr := &ValidationError{}
	data := Data{}

	known := make(map[string]struct{}, len(sorted))
	for _, f := range sorted {
		known[f.Key] = struct{}{}

		rawVal, present := raw[f.Key]
		if !present || isEmpty(rawVal) {
			if f.Required {
				vErr.Missing = append(vErr.Missing, f.Key)
			}
			continue
		}

		v, err := convert(f, rawVal)
		if err != nil {
			vErr.Invalid = append(vErr.Invalid, FieldError{Key: f.Key, Reason: err.Error()})
			continue
		}
		if f.Required && f.Kind == CHECKBOX && !v.Bool {
			vErr.Missing = append(vErr.Missing, f.Key)
			continue
		}
		data[f.Key] = v
	}

	unknown := []string{}
	for k := range raw {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	for _, k := range unknown {
		vErr.Invalid = append(vErr.Invalid, FieldError{Key: k, Reason: "not a field of this form"})
	}

	if !vErr.empty() {
		return nil, vErr
	}

	return data, nil
}

// Submit validates raw and hands the result to onValid. onValid is not called
// when validation fails.
func Submit(fields []FormField, raw map[string]any, onValid func(Data) error) error {
	data, err := Validate(fields, raw)
	if err != nil {
		return err
	}

	return onValid(data)
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

func convert(f FormField, v any) (Value, error) {
	switch f.Kind {
	case TEXT, TEXTAREA:
		s, ok := v.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected text, got %T", v)
		}
		return TextValue(strings.TrimSpace(s)), nil
	case EMAIL:
		s, ok := v.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected an email address, got %T", v)
		}
		addr, err := mail.ParseAddress(strings.TrimSpace(s))
		if err != nil {
			return Value{}, fmt.Errorf("invalid email address")
		}
		return TextValue(addr.Address), nil
	case SELECT:
		s, ok := v.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected one of the options, got %T", v)
		}
		if len(f.Options) > 0 && !slices.Contains(f.Options, s) {
			return Value{}, fmt.Errorf("%q is not one of the options", s)
		}
		return TextValue(s), nil
	case NUMBER:
		switch n := v.(type) {
		case float64:
			if !finite(n) {
				return Value{}, fmt.Errorf("%v is not a finite number", n)
			}
			return NumberValue(n), nil
		case int:
			return NumberValue(float64(n)), nil
		case int64:
			return NumberValue(float64(n)), nil
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil || !finite(parsed) {
				return Value{}, fmt.Errorf("%q is not a number", n)
			}
			return NumberValue(parsed), nil
		default:
			return Value{}, fmt.Errorf("expected a number, got %T", v)
		}
	case DATE:
		switch d := v.(type) {
		case string:
			t, err := time.Parse(types.DateFormat, strings.TrimSpace(d))
			if err != nil {
				return Value{}, fmt.Errorf("%q is not a date in %s format", d, types.DateFormat)
			}
			return DateValue(t), nil
		case time.Time:
			return DateValue(d), nil
		case types.Date:
			return DateValue(d.Time), nil
		default:
			return Value{}, fmt.Errorf("expected a date, got %T", v)
		}
	case CHECKBOX:
		switch b := v.(type) {
		case bool:
			return BoolValue(b), nil
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(b))
			if err != nil {
				return Value{}, fmt.Errorf("%q is not true or false", b)
			}
			return BoolValue(parsed), nil
		default:
			return Value{}, fmt.Errorf("expected true or false, got %T", v)
		}
	default:
		return Value{}, fmt.Errorf("unsupported field kind %s", f.Kind)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
