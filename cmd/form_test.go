package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFormRepository struct {
	GetEventFunc       func(ctx context.Context, id uuid.UUID) (events.Event, error)
	GetFormSchemaFunc  func(ctx context.Context, eventID uuid.UUID) (forms.Schema, error)
	SaveFormSchemaFunc func(ctx context.Context, schema forms.Schema) error
}

func (m *mockFormRepository) GetEvent(ctx context.Context, id uuid.UUID) (events.Event, error) {
	return m.GetEventFunc(ctx, id)
}

func (m *mockFormRepository) GetEvents(ctx context.Context, limit int32, cursor *string) (events.GetEventsResponse, error) {
	panic("not used")
}

func (m *mockFormRepository) CreateEvent(ctx context.Context, event events.Event) error {
	panic("not used")
}

func (m *mockFormRepository) UpdateEvent(ctx context.Context, event events.Event) error {
	panic("not used")
}

func (m *mockFormRepository) GetFormSchema(ctx context.Context, eventID uuid.UUID) (forms.Schema, error) {
	return m.GetFormSchemaFunc(ctx, eventID)
}

func (m *mockFormRepository) SaveFormSchema(ctx context.Context, schema forms.Schema) error {
	return m.SaveFormSchemaFunc(ctx, schema)
}

const formFile = `
event_id: %s
fields:
  - key: name
    label: Name
    kind: text
    required: true
    order: 1
  - key: email
    label: Email
    kind: email
    order: 2
`

func TestImportForm(t *testing.T) {
	fileEvent := uuid.New()
	flagEvent := uuid.New()
	file := strings.Replace(formFile, "%s", fileEvent.String(), 1)

	newRepo := func(saved *forms.Schema) *mockFormRepository {
		return &mockFormRepository{
			GetEventFunc: func(ctx context.Context, id uuid.UUID) (events.Event, error) {
				return events.Event{ID: id}, nil
			},
			GetFormSchemaFunc: func(ctx context.Context, eventID uuid.UUID) (forms.Schema, error) {
				return forms.Schema{}, forms.NewSchemaDoesNotExistError("none", nil)
			},
			SaveFormSchemaFunc: func(ctx context.Context, schema forms.Schema) error {
				*saved = schema
				return nil
			},
		}
	}

	t.Run("uses the event in the file", func(t *testing.T) {
		var saved forms.Schema

		schema, err := importForm(context.Background(), newRepo(&saved), strings.NewReader(file), "")

		require.NoError(t, err)
		assert.Equal(t, fileEvent, schema.EventID)
		assert.Equal(t, 1, schema.Version)
		assert.Len(t, saved.Fields, 2)
		assert.Equal(t, "name", saved.Fields[0].Key)
	})

	t.Run("flag overrides the file", func(t *testing.T) {
		var saved forms.Schema

		schema, err := importForm(context.Background(), newRepo(&saved), strings.NewReader(file), flagEvent.String())

		require.NoError(t, err)
		assert.Equal(t, flagEvent, schema.EventID)
		assert.Equal(t, flagEvent, saved.Fields[0].EventID)
	})

	t.Run("no event id anywhere", func(t *testing.T) {
		var saved forms.Schema
		noEvent := strings.Replace(formFile, "event_id: %s\n", "", 1)

		_, err := importForm(context.Background(), newRepo(&saved), strings.NewReader(noEvent), "")

		assert.ErrorContains(t, err, "no event id")
	})

	t.Run("unknown event", func(t *testing.T) {
		var saved forms.Schema
		repo := newRepo(&saved)
		repo.GetEventFunc = func(ctx context.Context, id uuid.UUID) (events.Event, error) {
			return events.Event{}, events.NewEventDoesNotExistsError("missing", nil)
		}

		_, err := importForm(context.Background(), repo, strings.NewReader(file), "")

		var eventErr *events.Error
		require.ErrorAs(t, err, &eventErr)
		assert.Equal(t, events.REASON_EVENT_DOES_NOT_EXIST, eventErr.Reason)
		assert.Empty(t, saved.Fields)
	})
}

func TestExportForm(t *testing.T) {
	eventID := uuid.New()
	repo := &mockFormRepository{
		GetFormSchemaFunc: func(ctx context.Context, id uuid.UUID) (forms.Schema, error) {
			return forms.Schema{
				EventID: id,
				Version: 3,
				Fields: []forms.FormField{
					{ID: uuid.New(), EventID: id, Key: "team", Label: "Team", Kind: forms.TEXT, Order: 1},
				},
			}, nil
		},
	}

	var out bytes.Buffer
	err := exportForm(context.Background(), repo, eventID, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), eventID.String())
	assert.Contains(t, out.String(), "key: team")
	assert.Contains(t, out.String(), "kind: text")
}
