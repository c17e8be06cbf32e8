package forms

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	EventID string           `yaml:"event_id,omitempty"`
	Fields  []schemaFileField `yaml:"fields"`
}

type schemaFileField struct {
	ID          string   `yaml:"id,omitempty"`
	Key         string   `yaml:"key"`
	Label       string   `yaml:"label"`
	Kind        string   `yaml:"kind"`
	Required    bool     `yaml:"required,omitempty"`
	Order       int      `yaml:"order"`
	Options     []string `yaml:"options,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
}

// ReadSchemaYAML parses a form definition file. The event id in the file is
// optional; uuid.Nil is returned when it is absent.
func ReadSchemaYAML(r io.Reader) (uuid.UUID, []FormField, error) {
	var file schemaFile
	err := yaml.NewDecoder(r).Decode(&file)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to decode form schema: %w", err)
	}

	eventID := uuid.Nil
	if file.EventID != "" {
		eventID, err = uuid.Parse(file.EventID)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("invalid event_id %q: %w", file.EventID, err)
		}
	}

	fields := make([]FormField, 0, len(file.Fields))
	for _, ff := range file.Fields {
		kind, err := ParseFieldKind(ff.Kind)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("field %q: %w", ff.Key, err)
		}

		id := uuid.Nil
		if ff.ID != "" {
			id, err = uuid.Parse(ff.ID)
			if err != nil {
				return uuid.Nil, nil, fmt.Errorf("field %q has invalid id: %w", ff.Key, err)
			}
		}

		fields = append(fields, FormField{
			ID:          id,
			EventID:     eventID,
			Key:         ff.Key,
			Label:       ff.Label,
			Kind:        kind,
			Required:    ff.Required,
			Order:       ff.Order,
			Options:     ff.Options,
			Placeholder: ff.Placeholder,
		})
	}

	return eventID, fields, nil
}

func WriteSchemaYAML(w io.Writer, schema Schema) error {
	file := schemaFile{
		EventID: schema.EventID.String(),
		Fields:  make([]schemaFileField, 0, len(schema.Fields)),
	}

	for _, f := range SortFields(schema.Fields) {
		file.Fields = append(file.Fields, schemaFileField{
			ID:          f.ID.String(),
			Key:         f.Key,
			Label:       f.Label,
			Kind:        f.Kind.String(),
			Required:    f.Required,
			Order:       f.Order,
			Options:     f.Options,
			Placeholder: f.Placeholder,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(file)
	if err != nil {
		return fmt.Errorf("failed to encode form schema: %w", err)
	}

	return enc.Close()
}
