package forms

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	GetFormSchemaFunc  func(ctx context.Context, eventID uuid.UUID) (Schema, error)
	SaveFormSchemaFunc func(ctx context.Context, schema Schema) error
}

func (m *mockRepository) GetFormSchema(ctx context.Context, eventID uuid.UUID) (Schema, error) {
	return m.GetFormSchemaFunc(ctx, eventID)
}

func (m *mockRepository) SaveFormSchema(ctx context.Context, schema Schema) error {
	return m.SaveFormSchemaFunc(ctx, schema)
}

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name    string
		fields  []FormField
		wantErr string
	}{
		{name: "valid", fields: testFields()},
		{name: "empty key", fields: []FormField{{Key: " ", Kind: TEXT}}, wantErr: "has no key"},
		{name: "duplicate key", fields: []FormField{{Key: "a", Kind: TEXT}, {Key: "a", Kind: NUMBER}}, wantErr: "more than once"},
		{name: "unknown kind", fields: []FormField{{Key: "a", Kind: FieldKind(99)}}, wantErr: "unknown kind"},
		{name: "select without options", fields: []FormField{{Key: "a", Kind: SELECT}}, wantErr: "at least one option"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.fields)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var formErr *Error
			require.True(t, errors.As(err, &formErr))
			assert.Equal(t, REASON_INVALID_SCHEMA, formErr.Reason)
			assert.Contains(t, formErr.Message, tt.wantErr)
		})
	}
}

func TestGetFields(t *testing.T) {
	eventID := uuid.New()

	t.Run("sorted fields", func(t *testing.T) {
		repo := &mockRepository{
			GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (Schema, error) {
				assert.Equal(t, eventID, id)
				return Schema{EventID: eventID, Version: 1, Fields: testFields()}, nil
			},
		}

		fields, err := GetFields(context.Background(), repo, eventID)
		require.NoError(t, err)
		assert.Equal(t, "full_name", fields[0].Key)
	})

	t.Run("no schema means empty form", func(t *testing.T) {
		repo := &mockRepository{
			GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (Schema, error) {
				return Schema{}, NewSchemaDoesNotExistError("nope", nil)
			},
		}

		fields, err := GetFields(context.Background(), repo, eventID)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("fetch error", func(t *testing.T) {
		repo := &mockRepository{
			GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (Schema, error) {
				return Schema{}, NewFailedToFetchError("db down", nil)
			},
		}

		_, err := GetFields(context.Background(), repo, eventID)
		assert.Error(t, err)
	})
}

func TestSaveFields(t *testing.T) {
	eventID := uuid.New()

	t.Run("first save", func(t *testing.T) {
		var saved Schema
		repo := &mockRepository{
			GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (Schema, error) {
				return Schema{}, NewSchemaDoesNotExistError("nope", nil)
			},
			SaveFormSchemaFunc: func(ctx context.Context, schema Schema) error {
				saved = schema
				return nil
			},
		}

		schema, err := SaveFields(context.Background(), repo, eventID, []FormField{
			{Key: " second ", Kind: TEXT, Order: 2},
			{Key: "first", Kind: NUMBER, Order: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, schema.Version)
		assert.Equal(t, saved, schema)
		assert.Equal(t, "first", schema.Fields[0].Key)
		assert.Equal(t, "second", schema.Fields[1].Key)
		for _, f := range schema.Fields {
			assert.NotEqual(t, uuid.Nil, f.ID)
			assert.Equal(t, eventID, f.EventID)
		}
	})

	t.Run("replacing bumps the version", func(t *testing.T) {
		repo := &mockRepository{
			GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (Schema, error) {
				return Schema{EventID: eventID, Version: 4}, nil
			},
			SaveFormSchemaFunc: func(ctx context.Context, schema Schema) error {
				assert.Equal(t, 5, schema.Version)
				return nil
			},
		}

		_, err := SaveFields(context.Background(), repo, eventID, testFields())
		require.NoError(t, err)
	})

	t.Run("fields with the same order keep the submitted order", func(t *testing.T) {
		var saved *Schema
		repo := &mockRepository{
			GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (Schema, error) {
				if saved == nil {
					return Schema{}, NewSchemaDoesNotExistError("nope", nil)
				}
				return *saved, nil
			},
			SaveFormSchemaFunc: func(ctx context.Context, schema Schema) error {
				saved = &schema
				return nil
			},
		}

		schema, err := SaveFields(context.Background(), repo, eventID, []FormField{
			{Key: "a", Kind: TEXT},
			{Key: "b", Kind: TEXT},
			{Key: "c", Kind: TEXT},
			{Key: "d", Kind: TEXT},
		})
		require.NoError(t, err)

		fields, err := GetFields(context.Background(), repo, eventID)
		require.NoError(t, err)

		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			keys = append(keys, f.Key)
		}
		assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
		for _, f := range schema.Fields {
			assert.Equal(t, uuid.Version(7), f.ID.Version())
		}
	})

	t.Run("invalid schema is not saved", func(t *testing.T) {
		repo := &mockRepository{}

		_, err := SaveFields(context.Background(), repo, eventID, []FormField{{Key: "", Kind: TEXT}})
		assert.Error(t, err)
	})
}

func TestSchemaYAML(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		doc := `
event_id: 6f1c2a8e-3a4b-4f0e-9d7c-1b2a3c4d5e6f
fields:
  - key: full_name
    label: Full name
    kind: text
    required: true
    order: 1
  - key: tshirt
    label: T-shirt size
    kind: Select
    order: 2
    options: [S, M, L]
`
		eventID, fields, err := ReadSchemaYAML(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, uuid.MustParse("6f1c2a8e-3a4b-4f0e-9d7c-1b2a3c4d5e6f"), eventID)
		require.Len(t, fields, 2)
		assert.Equal(t, TEXT, fields[0].Kind)
		assert.True(t, fields[0].Required)
		assert.Equal(t, SELECT, fields[1].Kind)
		assert.Equal(t, []string{"S", "M", "L"}, fields[1].Options)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := ReadSchemaYAML(strings.NewReader("fields:\n  - key: a\n    kind: colour\n"))
		assert.ErrorContains(t, err, "unknown field kind")
	})

	t.Run("write then read keeps the fields", func(t *testing.T) {
		eventID := uuid.New()
		schema := Schema{EventID: eventID, Version: 1, Fields: testFields()}
		for i := range schema.Fields {
			schema.Fields[i].EventID = eventID
		}

		var buf bytes.Buffer
		require.NoError(t, WriteSchemaYAML(&buf, schema))

		gotEventID, fields, err := ReadSchemaYAML(&buf)
		require.NoError(t, err)
		assert.Equal(t, eventID, gotEventID)
		assert.Equal(t, SortFields(schema.Fields), fields)
	})
}
