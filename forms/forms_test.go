package forms

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() []FormField {
	return []FormField{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Key: "tshirt", Label: "T-shirt size", Kind: SELECT, Order: 3, Options: []string{"S", "M", "L"}},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Key: "full_name", Label: "Full name", Kind: TEXT, Required: true, Order: 1},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Key: "age", Label: "Age", Kind: NUMBER, Required: true, Order: 2},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Key: "dob", Label: "Date of birth", Kind: DATE, Order: 4},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000005"), Key: "terms", Label: "I accept the terms", Kind: CHECKBOX, Required: true, Order: 5},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000006"), Key: "email", Label: "Email", Kind: EMAIL, Order: 6},
	}
}

func TestSortFields(t *testing.T) {
	t.Run("ascending order index", func(t *testing.T) {
		sorted := SortFields(testFields())

		keys := []string{}
		for _, f := range sorted {
			keys = append(keys, f.Key)
		}
		assert.Equal(t, []string{"full_name", "age", "tshirt", "dob", "terms", "email"}, keys)
	})

	t.Run("ties broken by id", func(t *testing.T) {
		a := FormField{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), Key: "a", Order: 1}
		b := FormField{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b"), Key: "b", Order: 1}

		assert.Equal(t, []FormField{a, b}, SortFields([]FormField{b, a}))
		assert.Equal(t, []FormField{a, b}, SortFields([]FormField{a, b}))
	})

	t.Run("does not modify input", func(t *testing.T) {
		fields := testFields()
		_ = SortFields(fields)
		assert.Equal(t, "tshirt", fields[0].Key)
	})
}

func TestFieldKind(t *testing.T) {
	for k := TEXT; k <= CHECKBOX; k++ {
		parsed, err := ParseFieldKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	kind, err := ParseFieldKind("TextArea")
	require.NoError(t, err)
	assert.Equal(t, TEXTAREA, kind)

	_, err = ParseFieldKind("slider")
	assert.Error(t, err)
	assert.Equal(t, "FieldKind(9)", FieldKind(9).String())
}

func TestRender(t *testing.T) {
	controls := Render(testFields())

	require.Len(t, controls, 6)
	for i := 1; i < len(controls); i++ {
		assert.NotEqual(t, controls[i-1].Key, controls[i].Key)
	}
	assert.Equal(t, "full_name", controls[0].Key)
	assert.Equal(t, "text", controls[0].InputType)
	assert.True(t, controls[0].Required)
	assert.Equal(t, "number", controls[1].InputType)
	assert.Equal(t, "select", controls[2].InputType)
	assert.Equal(t, []string{"S", "M", "L"}, controls[2].Options)
	assert.Equal(t, "checkbox", controls[4].InputType)
	assert.Equal(t, "email", controls[5].InputType)
}

func TestValidate(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		data, err := Validate(testFields(), map[string]any{
			"full_name": "  Ada Lovelace ",
			"age":       float64(36),
			"tshirt":    "M",
			"dob":       "1815-12-10",
			"terms":     true,
			"email":     "Ada <ada@example.com>",
		})
		require.NoError(t, err)

		expected := Data{
			"full_name": TextValue("Ada Lovelace"),
			"age":       NumberValue(36),
			"tshirt":    TextValue("M"),
			"dob":       DateValue(time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)),
			"terms":     BoolValue(true),
			"email":     TextValue("ada@example.com"),
		}
		if diff := cmp.Diff(expected, data); diff != "" {
			t.Errorf("unexpected data (-want +got):\n%s", diff)
		}
	})

	t.Run("optional fields may be omitted", func(t *testing.T) {
		data, err := Validate(testFields(), map[string]any{
			"full_name": "Ada",
			"age":       "36",
			"terms":     "true",
			"tshirt":    "",
		})
		require.NoError(t, err)
		assert.Len(t, data, 3)
		assert.Equal(t, NumberValue(36), data["age"])
		assert.NotContains(t, data, "tshirt")
	})

	t.Run("missing required fields are listed in form order", func(t *testing.T) {
		_, err := Validate(testFields(), map[string]any{
			"full_name": "   ",
			"terms":     false,
		})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"full_name", "age", "terms"}, vErr.Missing)
		assert.Empty(t, vErr.Invalid)
		assert.Contains(t, err.Error(), "missing required fields: full_name, age, terms")
	})

	t.Run("nil value counts as empty", func(t *testing.T) {
		_, err := Validate(testFields(), map[string]any{
			"full_name": nil,
			"age":       float64(1),
			"terms":     true,
		})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"full_name"}, vErr.Missing)
	})

	t.Run("type mismatches are reported", func(t *testing.T) {
		_, err := Validate(testFields(), map[string]any{
			"full_name": float64(12),
			"age":       "thirty",
			"tshirt":    "XXL",
			"dob":       "10/12/1815",
			"terms":     "maybe",
			"email":     "not-an-email",
		})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		keys := []string{}
		for _, fe := range vErr.Invalid {
			keys = append(keys, fe.Key)
		}
		assert.Equal(t, []string{"full_name", "age", "tshirt", "dob", "terms", "email"}, keys)
	})

	t.Run("non finite numbers are rejected", func(t *testing.T) {
		for _, age := range []any{"NaN", "Inf", "-Infinity", math.NaN(), math.Inf(1)} {
			_, err := Validate(testFields(), map[string]any{
				"full_name": "Ada",
				"age":       age,
				"terms":     true,
			})

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "age %v", age)
			require.Len(t, vErr.Invalid, 1)
			assert.Equal(t, "age", vErr.Invalid[0].Key)
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Validate(testFields(), map[string]any{
			"full_name":  "Ada",
			"age":        float64(36),
			"terms":      true,
			"zz_unknown": "x",
			"aa_unknown": "y",
		})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []FieldError{
			{Key: "aa_unknown", Reason: "not a field of this form"},
			{Key: "zz_unknown", Reason: "not a field of this form"},
		}, vErr.Invalid)
	})

	t.Run("empty schema accepts empty submission", func(t *testing.T) {
		data, err := Validate(nil, map[string]any{})
		require.NoError(t, err)
		assert.Empty(t, data)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("callback receives validated data", func(t *testing.T) {
		var got Data
		err := Submit(testFields(), map[string]any{
			"full_name": "Ada",
			"age":       float64(36),
			"terms":     true,
		}, func(d Data) error {
			got = d
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, TextValue("Ada"), got["full_name"])
	})

	t.Run("callback not called on invalid submission", func(t *testing.T) {
		called := false
		err := Submit(testFields(), map[string]any{}, func(d Data) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("callback error is returned", func(t *testing.T) {
		err := Submit(nil, map[string]any{}, func(d Data) error {
			return errors.New("boom")
		})

		assert.EqualError(t, err, "boom")
	})
}

func TestValueAny(t *testing.T) {
	d := Data{
		"a": TextValue("x"),
		"b": NumberValue(1.5),
		"c": BoolValue(true),
		"d": DateValue(time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)),
	}

	assert.Equal(t, map[string]any{"a": "x", "b": 1.5, "c": true, "d": "2026-03-01"}, d.ToMap())
}
