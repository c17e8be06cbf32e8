package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=FieldKind -linecomment

type FieldKind int

const (
	TEXT     FieldKind = iota // text
	TEXTAREA                  // textarea
	EMAIL                     // email
	NUMBER                    // number
	DATE                      // date
	SELECT                    // select
	CHECKBOX                  // checkbox
)

func ParseFieldKind(s string) (FieldKind, error) {
	for k := TEXT; k <= CHECKBOX; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q", s)
}

// FormField is one question of an event's registration form.
type FormField struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Key         string
	Label       string
	Kind        FieldKind
	Required    bool
	Order       int
	Options     []string
	Placeholder string
}

type Schema struct {
	EventID uuid.UUID
	Version int
	Fields  []FormField
}

type Repository interface {
	GetFormSchema(ctx context.Context, eventID uuid.UUID) (Schema, error)
	SaveFormSchema(ctx context.Context, schema Schema) error
}
