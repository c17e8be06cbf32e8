package forms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type ValueKind int

const (
	TEXT_VALUE ValueKind = iota
	NUMBER_VALUE
	BOOL_VALUE
	DATE_VALUE
)

// Value is a single submitted answer. Only the member matching Kind is set.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
	Date   time.Time
}

// Data maps a field key to the validated answer for that field.
type Data map[string]Value

func TextValue(s string) Value {
	return Value{Kind: TEXT_VALUE, Text: s}
}

func NumberValue(n float64) Value {
	return Value{Kind: NUMBER_VALUE, Number: n}
}

func BoolValue(b bool) Value {
	return Value{Kind: BOOL_VALUE, Bool: b}
}

func DateValue(t time.Time) Value {
	y, m, d := t.Date()
	return Value{Kind: DATE_VALUE, Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Any returns the value in the shape it would have in a JSON document.
func (v Value) Any() any {
	switch v.Kind {
	case TEXT_VALUE:
		return v.Text
	case NUMBER_VALUE:
		return v.Number
	case BOOL_VALUE:
		return v.Bool
	case DATE_VALUE:
		return v.Date.Format(types.DateFormat)
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.Kind))
	}
}

func (v Value) String() string {
	switch v.Kind {
	case NUMBER_VALUE:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case BOOL_VALUE:
		if v.Bool {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v.Any())
	}
}

func (d Data) ToMap() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v.Any()
	}
	return out
}

func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
