package forms

import (
	"sort"
	"strings"
)

// Control describes the input the presentation layer should draw for a field.
type Control struct {
	Key         string
	Label       string
	Kind        FieldKind
	InputType   string
	Required    bool
	Options     []string
	Placeholder string
}

// SortFields returns a copy of fields ordered by Order, ties broken by ID.
func SortFields(fields []FormField) []FormField {
	sorted := make([]FormField, len(fields))
	copy(sorted, fields)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return strings.Compare(sorted[i].ID.String(), sorted[j].ID.String()) < 0
	})

	return sorted
}

func Render(fields []FormField) []Control {
	sorted := SortFields(fields)

	controls := make([]Control, 0, len(sorted))
	for _, f := range sorted {
		controls = append(controls, Control{
			Key:         f.Key,
			Label:       f.Label,
			Kind:        f.Kind,
			InputType:   inputType(f.Kind),
			Required:    f.Required,
			Options:     f.Options,
			Placeholder: f.Placeholder,
		})
	}

	return controls
}

func inputType(kind FieldKind) string {
	switch kind {
	case TEXTAREA:
		return "textarea"
	case SELECT:
		return "select"
	case EMAIL:
		return "email"
	case NUMBER:
		return "number"
	case DATE:
		return "date"
	case CHECKBOX:
		return "checkbox"
	default:
		return "text"
	}
}
