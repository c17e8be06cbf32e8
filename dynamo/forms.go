package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/slices"
)

var _ forms.Repository = &DB{}

// The whole form of an event is one item next to the event.
type formSchemaDynamo struct {
	PK      string
	SK      string
	EventID uuid.UUID
	Version int
	Fields  []formFieldDynamo
}

type formFieldDynamo struct {
	ID          uuid.UUID
	Key         string
	Label       string
	Kind        string
	Required    bool
	Order       int
	Options     []string `dynamodbav:",omitempty"`
	Placeholder string   `dynamodbav:",omitempty"`
}

const (
	formEntityName = "FORM"
)

func formSchemaSK() string {
	return formEntityName
}

func formSchemaToDynamo(schema forms.Schema) formSchemaDynamo {
	return formSchemaDynamo{
		PK:      eventPK(schema.EventID),
		SK:      formSchemaSK(),
		EventID: schema.EventID,
		Version: schema.Version,
		Fields: slices.Map(schema.Fields, func(f forms.FormField) formFieldDynamo {
			return formFieldDynamo{
				ID:          f.ID,
				Key:         f.Key,
				Label:       f.Label,
				Kind:        f.Kind.String(),
				Required:    f.Required,
				Order:       f.Order,
				Options:     f.Options,
				Placeholder: f.Placeholder,
			}
		}),
	}
}

func dynamoToFormSchema(item formSchemaDynamo) forms.Schema {
	return forms.Schema{
		EventID: item.EventID,
		Version: item.Version,
		Fields: slices.Map(item.Fields, func(f formFieldDynamo) forms.FormField {
			kind, err := forms.ParseFieldKind(f.Kind)
			if err != nil {
				panic(fmt.Sprintf("bad field kind stored in DB: %s", err))
			}
			return forms.FormField{
				ID:          f.ID,
				EventID:     item.EventID,
				Key:         f.Key,
				Label:       f.Label,
				Kind:        kind,
				Required:    f.Required,
				Order:       f.Order,
				Options:     f.Options,
				Placeholder: f.Placeholder,
			}
		}),
	}
}

func (d *DB) GetFormSchema(ctx context.Context, eventID uuid.UUID) (schema forms.Schema, err error) {
	ctx, span := d.startSpan(ctx, "GetFormSchema")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: eventPK(eventID)},
			"SK": &types.AttributeValueMemberS{Value: formSchemaSK()},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return forms.Schema{}, forms.NewTimeoutError("GetFormSchema timed out")
		}
		return forms.Schema{}, forms.NewFailedToFetchError(fmt.Sprintf("Failed to fetch form for event %q", eventID), err)
	}

	if len(resp.Item) == 0 {
		return forms.Schema{}, forms.NewSchemaDoesNotExistError(fmt.Sprintf("Event %q has no form", eventID), nil)
	}

	var item formSchemaDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &item)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal form schema from DB: %s", err))
	}

	return dynamoToFormSchema(item), nil
}

func (d *DB) SaveFormSchema(ctx context.Context, schema forms.Schema) (err error) {
	ctx, span := d.startSpan(ctx, "SaveFormSchema")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoItem := formSchemaToDynamo(schema)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return forms.NewFailedToTranslateToDBModelError("Failed to convert form schema to dynamo model", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(versionConditional(dynamoItem.Version)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return forms.NewVersionConflictError(fmt.Sprintf("Form for event %q was changed by someone else", schema.EventID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return forms.NewTimeoutError("SaveFormSchema timed out")
		}
		return forms.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}
