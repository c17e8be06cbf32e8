package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	gsi1 = "GSI1"
)

var tracer = otel.Tracer("github.com/optimus-events/event-registration/dynamo")

type DB struct {
	dynamoClient *dynamodb.Client
	tableName    string
}

func NewDB(dynamoClient *dynamodb.Client, tableName string) *DB {
	return &DB{
		dynamoClient: dynamoClient,
		tableName:    tableName,
	}
}

// EnsureTable creates the single table and its GSI if it is missing. Used for
// local development and tests; production tables are provisioned separately.
func (d *DB) EnsureTable(ctx context.Context) error {
	_, err := d.dynamoClient.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table: %w", err)
	}

	_, err = d.dynamoClient.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(d.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("SK"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("GSI1PK"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("GSI1SK"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("SK"), KeyType: types.KeyTypeRange},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(gsi1),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("GSI1PK"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("GSI1SK"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{
					ProjectionType: types.ProjectionTypeAll,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

func newEntityVersionConditional(version int) expression.ConditionBuilder {
	return expression.Name("PK").AttributeNotExists().
		And(expression.Value(version).Equal(expression.Value(1)))
}

func existingEntityVersionConditional(version int) expression.ConditionBuilder {
	return expression.Name("PK").AttributeExists().
		And(expression.Name("Version").Equal(expression.Value(version - 1)))
}

// versionConditional picks the create or update condition for an entity
// that is written whole on every change.
func versionConditional(version int) expression.ConditionBuilder {
	if version <= 1 {
		return newEntityVersionConditional(version)
	}
	return existingEntityVersionConditional(version)
}

func exprMustBuild(builder expression.Builder) expression.Expression {
	expr, err := builder.Build()
	if err != nil {
		panic("failed to build dynamo expression")
	}

	return expr
}

func (d *DB) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "dynamo."+operation, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(
		attribute.String("db.system", "dynamodb"),
		attribute.String("aws.dynamodb.table_names", d.tableName),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
