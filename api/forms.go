package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/ptr"
	"github.com/optimus-events/event-registration/slices"
)

func (a *API) GetEventForm(ctx context.Context, request GetEventFormRequestObject) (GetEventFormResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if _, err := a.events.GetEvent(ctx, request.EventId); err != nil {
		e := a.eventError(ctx, err, "Failed to get event")
		return GetEventFormdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	schema, err := a.forms.GetFormSchema(ctx, request.EventId)
	if err != nil {
		var formErr *forms.Error
		if !errors.As(err, &formErr) || formErr.Reason != forms.REASON_SCHEMA_DOES_NOT_EXIST {
			logger.Error("Failed to get form schema", "error", err)
			e := formError(err)
			return GetEventFormdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
		}
		schema = forms.Schema{EventID: request.EventId, Fields: []forms.FormField{}}
	}

	return GetEventForm200JSONResponse(schemaToApiSchema(schema)), nil
}

func (a *API) PutEventForm(ctx context.Context, request PutEventFormRequestObject) (PutEventFormResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		return PutEventForm400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	if _, e := a.requireOrganizer(ctx, request.EventId); e != nil {
		return PutEventFormdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	fields := make([]forms.FormField, 0, len(request.Body.Fields))
	for _, f := range request.Body.Fields {
		field, err := apiFieldToField(f)
		if err != nil {
			return PutEventForm400JSONResponse{
				Code:    InvalidSchema,
				Message: err.Error(),
			}, nil
		}
		fields = append(fields, field)
	}

	schema, err := forms.SaveFields(ctx, a.forms, request.EventId, fields)
	if err != nil {
		logger.Error("Failed to save form schema", "error", err)
		e := formError(err)
		return PutEventFormdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PutEventForm200JSONResponse(schemaToApiSchema(schema)), nil
}

func formError(err error) *apiError {
	var formErr *forms.Error
	if errors.As(err, &formErr) {
		switch formErr.Reason {
		case forms.REASON_INVALID_SCHEMA:
			return newApiError(http.StatusBadRequest, InvalidSchema, formErr.Message)
		case forms.REASON_VERSION_CONFLICT:
			return newApiError(http.StatusConflict, Conflict, "Form was changed by someone else, reload and try again")
		case forms.REASON_TIMEOUT:
			return newApiError(http.StatusGatewayTimeout, Timeout, "Timed out talking to the database")
		}
	}

	return newApiError(http.StatusInternalServerError, InternalError, "Failed to read or write the form")
}

func schemaToApiSchema(schema forms.Schema) FormSchema {
	sorted := forms.SortFields(schema.Fields)
	return FormSchema{
		EventId:  schema.EventID,
		Version:  schema.Version,
		Fields:   slices.Map(sorted, fieldToApiField),
		Controls: slices.Map(forms.Render(sorted), controlToApiControl),
	}
}

func fieldToApiField(f forms.FormField) FormField {
	id := f.ID
	return FormField{
		Id:          &id,
		Key:         f.Key,
		Label:       f.Label,
		Kind:        FieldKind(f.Kind.String()),
		Required:    ptr.Bool(f.Required),
		Order:       ptr.Int(f.Order),
		Options:     optionsToApiOptions(f.Options),
		Placeholder: placeholderToApiPlaceholder(f.Placeholder),
	}
}

func apiFieldToField(f FormField) (forms.FormField, error) {
	kind, err := forms.ParseFieldKind(string(f.Kind))
	if err != nil {
		return forms.FormField{}, err
	}

	field := forms.FormField{
		Key:   f.Key,
		Label: f.Label,
		Kind:  kind,
	}
	if f.Id != nil {
		field.ID = *f.Id
	}
	if f.Required != nil {
		field.Required = *f.Required
	}
	if f.Order != nil {
		field.Order = *f.Order
	}
	if f.Options != nil {
		field.Options = *f.Options
	}
	if f.Placeholder != nil {
		field.Placeholder = *f.Placeholder
	}

	return field, nil
}

func controlToApiControl(c forms.Control) Control {
	return Control{
		Key:         c.Key,
		Label:       c.Label,
		Kind:        FieldKind(c.Kind.String()),
		InputType:   c.InputType,
		Required:    c.Required,
		Options:     optionsToApiOptions(c.Options),
		Placeholder: placeholderToApiPlaceholder(c.Placeholder),
	}
}

func optionsToApiOptions(options []string) *[]string {
	if len(options) == 0 {
		return nil
	}
	return &options
}

func placeholderToApiPlaceholder(p string) *string {
	if p == "" {
		return nil
	}
	return ptr.String(p)
}
