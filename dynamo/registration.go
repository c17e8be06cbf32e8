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
	"github.com/optimus-events/event-registration/registration"
	"github.com/optimus-events/event-registration/slices"
)

var _ registration.Repository = &DB{}

type registrationDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	ID           uuid.UUID
	Version      int
	EventID      uuid.UUID
	UserID       string
	UserEmail    string
	RegisteredAt time.Time
	FormData     map[string]formValueDynamo
	PaymentKind  string
	Payment      *paymentDynamo
}

type formValueDynamo struct {
	Kind   string
	Text   string    `dynamodbav:",omitempty"`
	Number float64   `dynamodbav:",omitempty"`
	Bool   bool      `dynamodbav:",omitempty"`
	Date   time.Time
}

type paymentDynamo struct {
	OrderID   string
	PaymentID string
	Signature string
}

const (
	registrationEntityName = "REGISTRATION"
	userEntityName         = "USER"
)

func registrationPK(eventId uuid.UUID) string {
	return eventPK(eventId)
}

// Registration sort keys lead with the registration time so listings come
// back in time order.
func registrationSK(registeredAt time.Time, id uuid.UUID) string {
	return fmt.Sprintf("%s#%s#%s", registrationEntityName, registeredAt.UTC().Format(time.RFC3339Nano), id)
}

func userPK(userId string) string {
	return fmt.Sprintf("%s#%s", userEntityName, userId)
}

var valueKindNames = map[forms.ValueKind]string{
	forms.TEXT_VALUE:   "TEXT",
	forms.NUMBER_VALUE: "NUMBER",
	forms.BOOL_VALUE:   "BOOL",
	forms.DATE_VALUE:   "DATE",
}

func formDataToDynamo(data forms.Data) map[string]formValueDynamo {
	out := make(map[string]formValueDynamo, len(data))
	for k, v := range data {
		out[k] = formValueDynamo{
			Kind:   valueKindNames[v.Kind],
			Text:   v.Text,
			Number: v.Number,
			Bool:   v.Bool,
			Date:   v.Date,
		}
	}
	return out
}

func dynamoToFormData(data map[string]formValueDynamo) forms.Data {
	out := make(forms.Data, len(data))
	for k, v := range data {
		switch v.Kind {
		case "TEXT":
			out[k] = forms.TextValue(v.Text)
		case "NUMBER":
			out[k] = forms.NumberValue(v.Number)
		case "BOOL":
			out[k] = forms.BoolValue(v.Bool)
		case "DATE":
			out[k] = forms.DateValue(v.Date)
		default:
			panic(fmt.Sprintf("unknown form value kind %q", v.Kind))
		}
	}
	return out
}

func registrationToDynamo(reg registration.Registration) registrationDynamo {
	item := registrationDynamo{
		PK:           registrationPK(reg.EventID),
		SK:           registrationSK(reg.RegisteredAt, reg.ID),
		GSI1PK:       userPK(reg.UserID),
		GSI1SK:       registrationSK(reg.RegisteredAt, reg.ID),
		ID:           reg.ID,
		Version:      reg.Version,
		EventID:      reg.EventID,
		UserID:       reg.UserID,
		UserEmail:    reg.UserEmail,
		RegisteredAt: reg.RegisteredAt,
		FormData:     formDataToDynamo(reg.FormData),
		PaymentKind:  reg.PaymentKind.String(),
	}
	if reg.Payment != nil {
		item.Payment = &paymentDynamo{
			OrderID:   reg.Payment.OrderID,
			PaymentID: reg.Payment.PaymentID,
			Signature: reg.Payment.Signature,
		}
	}

	return item
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Registration {
	reg := registration.Registration{
		ID:           dynReg.ID,
		Version:      dynReg.Version,
		EventID:      dynReg.EventID,
		UserID:       dynReg.UserID,
		UserEmail:    dynReg.UserEmail,
		RegisteredAt: dynReg.RegisteredAt,
		FormData:     dynamoToFormData(dynReg.FormData),
	}

	switch dynReg.PaymentKind {
	case registration.FREE.String():
		reg.PaymentKind = registration.FREE
	case registration.PAID.String():
		reg.PaymentKind = registration.PAID
	default:
		panic(fmt.Sprintf("unknown payment kind %q", dynReg.PaymentKind))
	}

	if dynReg.Payment != nil {
		reg.Payment = &registration.PaymentConfirmation{
			OrderID:   dynReg.Payment.OrderID,
			PaymentID: dynReg.Payment.PaymentID,
			Signature: dynReg.Payment.Signature,
		}
	}

	return reg
}

func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration) (err error) {
	ctx, span := d.startSpan(ctx, "CreateRegistration")
	defer func() { endSpan(span, err) }()

	if err := reg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoReg := registrationToDynamo(reg)

	item, err := attributevalue.MarshalMap(dynamoReg)
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoReg.Version)))

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
			return registration.NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with ID %q already exists", reg.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("CreateRegistration timed out")
		}
		return registration.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

func (d *DB) GetAllRegistrationsForEvent(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (resp registration.GetRegistrationsResponse, err error) {
	ctx, span := d.startSpan(ctx, "GetAllRegistrationsForEvent")
	defer func() { endSpan(span, err) }()

	keyCond := expression.Key("PK").Equal(expression.Value(registrationPK(eventId))).
		And(expression.Key("SK").BeginsWith(registrationEntityName))

	return d.queryRegistrations(ctx, nil, keyCond, limit, cursor)
}

func (d *DB) GetRegistrationsForUser(ctx context.Context, userId string, limit int32, cursor *string) (resp registration.GetRegistrationsResponse, err error) {
	ctx, span := d.startSpan(ctx, "GetRegistrationsForUser")
	defer func() { endSpan(span, err) }()

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(userPK(userId))).
		And(expression.Key("GSI1SK").BeginsWith(registrationEntityName))

	return d.queryRegistrations(ctx, aws.String(gsi1), keyCond, limit, cursor)
}

func (d *DB) queryRegistrations(ctx context.Context, index *string, keyCond expression.KeyConditionBuilder, limit int32, cursor *string) (registration.GetRegistrationsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	expr := exprMustBuild(expression.NewBuilder().WithKeyCondition(keyCond))

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		var err error
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return registration.GetRegistrationsResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		IndexName:                 index,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// Newest registration first
		ScanIndexForward:  aws.Bool(false),
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.GetRegistrationsResponse{}, registration.NewTimeoutError("Registration query timed out")
		}
		return registration.GetRegistrationsResponse{}, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
	}

	p := pageFromQuery[registrationDynamo](result, limit)

	return registration.GetRegistrationsResponse{
		Data:        slices.Map(p.items, dynamoToRegistration),
		Cursor:      p.cursor,
		HasNextPage: p.hasNextPage,
	}, nil
}
