package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateSchema checks a form definition before it is saved by an organizer.
func ValidateSchema(fields []FormField) error {
	seen := map[string]struct{}{}
	for i, f := range fields {
		key := strings.TrimSpace(f.Key)
		if key == "" {
			return NewInvalidSchemaError(fmt.Sprintf("Field %d has no key", i))
		}
		if _, ok := seen[key]; ok {
			return NewInvalidSchemaError(fmt.Sprintf("Field key %q is used more than once", key))
		}
		seen[key] = struct{}{}

		if f.Kind < TEXT || f.Kind > CHECKBOX {
			return NewInvalidSchemaError(fmt.Sprintf("Field %q has unknown kind %d", key, f.Kind))
		}
		if f.Kind == SELECT && len(f.Options) == 0 {
			return NewInvalidSchemaError(fmt.Sprintf("Select field %q needs at least one option", key))
		}
	}

	return nil
}

// GetFields returns the event's fields in render order. An event without a
// saved form has an empty schema.
func GetFields(ctx context.Context, repo Repository, eventID uuid.UUID) ([]FormField, error) {
	schema, err := repo.GetFormSchema(ctx, eventID)
	if err != nil {
		var formErr *Error
		if errors.As(err, &formErr) && formErr.Reason == REASON_SCHEMA_DOES_NOT_EXIST {
			return []FormField{}, nil
		}
		return nil, err
	}

	return SortFields(schema.Fields), nil
}

// SaveFields replaces the whole form of an event. Fields without an ID get a
// time ordered one, so fields sharing an Order keep the order they were sent in.
func SaveFields(ctx context.Context, repo Repository, eventID uuid.UUID, fields []FormField) (Schema, error) {
	err := ValidateSchema(fields)
	if err != nil {
		return Schema{}, err
	}

	version := 1
	existing, err := repo.GetFormSchema(ctx, eventID)
	if err != nil {
		var formErr *Error
		if !errors.As(err, &formErr) || formErr.Reason != REASON_SCHEMA_DOES_NOT_EXIST {
			return Schema{}, err
		}
	} else {
		version = existing.Version + 1
	}

	normalized := make([]FormField, 0, len(fields))
	for _, f := range fields {
		if f.ID == uuid.Nil {
			f.ID, err = uuid.NewV7()
			if err != nil {
				return Schema{}, fmt.Errorf("failed to generate field id: %w", err)
			}
		}
		f.EventID = eventID
		f.Key = strings.TrimSpace(f.Key)
		normalized = append(normalized, f)
	}

	schema := Schema{
		EventID: eventID,
		Version: version,
		Fields:  SortFields(normalized),
	}

	err = repo.SaveFormSchema(ctx, schema)
	if err != nil {
		return Schema{}, err
	}

	return schema, nil
}
