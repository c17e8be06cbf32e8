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
	"github.com/optimus-events/event-registration/registration"
)

var _ registration.CheckoutStore = &DB{}

type checkoutDynamo struct {
	PK             string
	SK             string
	ID             uuid.UUID
	Version        int
	EventID        uuid.UUID
	EventTitle     string
	UserID         string
	UserEmail      string
	State          int
	Held           map[string]formValueDynamo
	Order          *orderDynamo
	Confirmation   *paymentDynamo
	RegistrationID *uuid.UUID
	FailureReason  string `dynamodbav:",omitempty"`
	FailureMessage string `dynamodbav:",omitempty"`
	CreatedAt      time.Time
	ExpiresAt      time.Time
	// Epoch seconds, for the table's TTL setting.
	TTL int64
}

type orderDynamo struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

const (
	checkoutEntityName = "CHECKOUT"
)

func checkoutPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", checkoutEntityName, id)
}

func checkoutSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", checkoutEntityName, id)
}

func checkoutToDynamo(c registration.Checkout) checkoutDynamo {
	item := checkoutDynamo{
		PK:             checkoutPK(c.ID),
		SK:             checkoutSK(c.ID),
		ID:             c.ID,
		Version:        c.Version,
		EventID:        c.EventID,
		EventTitle:     c.EventTitle,
		UserID:         c.UserID,
		UserEmail:      c.UserEmail,
		State:          int(c.State),
		Held:           formDataToDynamo(c.Held),
		RegistrationID: c.RegistrationID,
		CreatedAt:      c.CreatedAt,
		ExpiresAt:      c.ExpiresAt,
		TTL:            c.ExpiresAt.Add(registration.RetentionAfterExpiry).Unix(),
	}
	if c.Order != nil {
		item.Order = &orderDynamo{
			ID:       c.Order.ID,
			Amount:   c.Order.Amount.Amount(),
			Currency: c.Order.Amount.Currency().Code,
			Receipt:  c.Order.Receipt,
		}
	}
	if c.Confirmation != nil {
		item.Confirmation = &paymentDynamo{
			OrderID:   c.Confirmation.OrderID,
			PaymentID: c.Confirmation.PaymentID,
			Signature: c.Confirmation.Signature,
		}
	}
	if c.Failure != nil {
		item.FailureReason = string(c.Failure.Reason)
		item.FailureMessage = c.Failure.Message
	}

	return item
}

func dynamoToCheckout(item checkoutDynamo) registration.Checkout {
	c := registration.Checkout{
		ID:             item.ID,
		Version:        item.Version,
		EventID:        item.EventID,
		EventTitle:     item.EventTitle,
		UserID:         item.UserID,
		UserEmail:      item.UserEmail,
		State:          registration.State(item.State),
		Held:           dynamoToFormData(item.Held),
		RegistrationID: item.RegistrationID,
		CreatedAt:      item.CreatedAt,
		ExpiresAt:      item.ExpiresAt,
	}
	if item.Order != nil {
		c.Order = &registration.Order{
			ID:      item.Order.ID,
			Amount:  money.New(item.Order.Amount, item.Order.Currency),
			Receipt: item.Order.Receipt,
		}
	}
	if item.Confirmation != nil {
		c.Confirmation = &registration.PaymentConfirmation{
			OrderID:   item.Confirmation.OrderID,
			PaymentID: item.Confirmation.PaymentID,
			Signature: item.Confirmation.Signature,
		}
	}
	if item.FailureReason != "" {
		c.Failure = &registration.Failure{
			Reason:  registration.ErrorReason(item.FailureReason),
			Message: item.FailureMessage,
		}
	}

	return c
}

func (d *DB) GetCheckout(ctx context.Context, id uuid.UUID) (checkout registration.Checkout, err error) {
	ctx, span := d.startSpan(ctx, "GetCheckout")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: checkoutPK(id)},
			"SK": &types.AttributeValueMemberS{Value: checkoutSK(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Checkout{}, registration.NewTimeoutError("GetCheckout timed out")
		}
		return registration.Checkout{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch checkout %q", id), err)
	}

	if len(resp.Item) == 0 {
		return registration.Checkout{}, registration.NewCheckoutDoesNotExistError(fmt.Sprintf("Checkout %s does not exist", id), nil)
	}

	var item checkoutDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &item)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal checkout from DB: %s", err))
	}

	return dynamoToCheckout(item), nil
}

func (d *DB) PutCheckout(ctx context.Context, checkout registration.Checkout) (err error) {
	ctx, span := d.startSpan(ctx, "PutCheckout")
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoItem := checkoutToDynamo(checkout)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to convert checkout to dynamo model", err)
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
			return registration.NewCheckoutVersionConflictError(fmt.Sprintf("Checkout %s was changed in another window", checkout.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("PutCheckout timed out")
		}
		return registration.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}
