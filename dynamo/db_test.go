package dynamo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	container "github.com/testcontainers/testcontainers-go/modules/dynamodb"
)

var dynamodbTestContainer *container.DynamoDBContainer
var dynamoClient *dynamodb.Client
var db *DB

const tableName = "EventRegistration-Test"

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)

	err := setupDynamo(ctx)
	if err != nil {
		fmt.Println(err)
		cancel()
		os.Exit(1)
	}

	code := m.Run()

	shutdownDynamo(ctx)
	cancel()
	os.Exit(code)
}

func setupDynamo(ctx context.Context) error {
	endpoint := "localhost:8000"

	if _, ok := os.LookupEnv("TEST_IN_CI"); !ok {
		var err error
		dynamodbTestContainer, err = container.Run(ctx, "amazon/dynamodb-local")
		if err != nil {
			return fmt.Errorf("error starting dynamo testcontainer: %w", err)
		}

		endpoint, err = dynamodbTestContainer.Endpoint(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to get endpoint: %w", err)
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("localhost"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
	)
	if err != nil {
		return fmt.Errorf("error making dynamo config: %w", err)
	}

	dynamoClient = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("http://%s", endpoint))
	})

	db = NewDB(dynamoClient, tableName)

	return db.EnsureTable(ctx)
}

func resetTable(ctx context.Context) {
	_, err := dynamoClient.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		fmt.Printf("failed to delete table: %s", err)
	}

	err = db.EnsureTable(ctx)
	if err != nil {
		fmt.Printf("failed to remake table: %s", err)
	}
}

func shutdownDynamo(ctx context.Context) {
	if dynamodbTestContainer == nil {
		return
	}

	err := dynamodbTestContainer.Terminate(ctx)
	if err != nil {
		fmt.Printf("error terminating dynamo testcontainer: %s\n", err)
	}
}
