package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/slices"
)

var _ events.Repository = &DB{}

type eventDynamo struct {
	PK          string
	SK          string
	GSI1PK      string
	GSI1SK      string
	ID          string
	Version     int
	Title       string
	Description string
	// Minor units. Absent for free events.
	PriceAmount   *int64
	PriceCurrency string
	OrganizerID   string
	StartTime     time.Time
	CreatedAt     time.Time
}

const (
	eventEntityName = "EVENT"
)

func eventPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", eventEntityName, id)
}

func eventSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", eventEntityName, id)
}

func newEventDynamo(event events.Event) eventDynamo {
	item := eventDynamo{
		PK:          eventPK(event.ID),
		SK:          eventSK(event.ID),
		GSI1PK:      eventEntityName,
		GSI1SK:      fmt.Sprintf("%s#%s#%s", eventEntityName, event.StartTime.UTC().Format(time.RFC3339), event.ID),
		ID:          event.ID.String(),
		Version:     event.Version,
		Title:       event.Title,
		Description: event.Description,
		OrganizerID: event.OrganizerID,
		StartTime:   event.StartTime,
		CreatedAt:   event.CreatedAt,
	}
	if event.TicketPrice != nil {
		amount := event.TicketPrice.Amount()
		item.PriceAmount = &amount
		item.PriceCurrency = event.TicketPrice.Currency().Code
	}

	return item
}

func eventFromEventDynamo(event eventDynamo) events.Event {
	var price *money.Money
	if event.PriceAmount != nil {
		price = money.New(*event.PriceAmount, event.PriceCurrency)
	}

	return events.Event{
		ID:          uuid.MustParse(event.ID),
		Version:     event.Version,
		Title:       event.Title,
		Description: event.Description,
		TicketPrice: price,
		OrganizerID: event.OrganizerID,
		StartTime:   event.StartTime,
		CreatedAt:   event.CreatedAt,
	}
}

func (d *DB) GetEvent(ctx context.Context, id uuid.UUID) (event events.Event, err error) {
	ctx, span := d.startSpan(ctx, "GetEvent")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: eventPK(id)},
			"SK": &types.AttributeValueMemberS{Value: eventSK(id)},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return events.Event{}, events.NewTimeoutError("GetEvent timed out")
		}
		return events.Event{}, events.NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", id), err)
	}

	if len(resp.Item) == 0 {
		return events.Event{}, events.NewEventDoesNotExistsError(fmt.Sprintf("Event with ID %q not found", id), nil)
	}

	var item eventDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &item)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal event from DB: %s", err))
	}
	return eventFromEventDynamo(item), nil
}

func (d *DB) CreateEvent(ctx context.Context, event events.Event) (err error) {
	ctx, span := d.startSpan(ctx, "CreateEvent")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoItem := newEventDynamo(event)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return events.NewFailedToTranslateToDBModelError("Failed to convert Event to eventDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoItem.Version)))

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
			return events.NewEventAlreadyExistsError(fmt.Sprintf("Event with ID %q already exists", event.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return events.NewTimeoutError("CreateEvent timed out")
		}
		return events.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

func (d *DB) GetEvents(ctx context.Context, limit int32, cursor *string) (resp events.GetEventsResponse, err error) {
	ctx, span := d.startSpan(ctx, "GetEvents")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(eventEntityName)).
		And(expression.Key("GSI1SK").BeginsWith(eventEntityName))

	expr := exprMustBuild(expression.NewBuilder().WithKeyCondition(keyCond))

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return events.GetEventsResponse{}, events.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(gsi1),
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// Latest start time first
		ScanIndexForward:  aws.Bool(false),
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return events.GetEventsResponse{}, events.NewTimeoutError("GetEvents timed out")
		}
		return events.GetEventsResponse{}, events.NewFailedToFetchError("Failed to fetch events from dynamo", err)
	}

	p := pageFromQuery[eventDynamo](result, limit)

	return events.GetEventsResponse{
		Data:        slices.Map(p.items, eventFromEventDynamo),
		Cursor:      p.cursor,
		HasNextPage: p.hasNextPage,
	}, nil
}

func (d *DB) UpdateEvent(ctx context.Context, event events.Event) (err error) {
	ctx, span := d.startSpan(ctx, "UpdateEvent")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoItem := newEventDynamo(event)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return events.NewFailedToTranslateToDBModelError("Failed to convert Event to eventDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(existingEntityVersionConditional(dynamoItem.Version)))

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
			return events.NewEventDoesNotExistsError(fmt.Sprintf("Event with ID %q does not exist or was changed concurrently", event.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return events.NewTimeoutError("UpdateEvent timed out")
		}
		return events.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}
