package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/optimus-events/event-registration/api"
	"github.com/optimus-events/event-registration/dynamo"
)

// loadAWSConfig uses dummy credentials locally so a dynamodb-local
// container works without an AWS account.
func loadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	if cfg.Env == api.LOCAL {
		return config.LoadDefaultConfig(ctx,
			config.WithRegion("localhost"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
	}

	return config.LoadDefaultConfig(ctx)
}

func createDB(ctx context.Context, awsCfg aws.Config, cfg Config) (*dynamo.DB, error) {
	var dynamoClient *dynamodb.Client
	if cfg.Env == api.LOCAL {
		dynamoClient = dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("http://%s", cfg.DynamoEndpoint))
		})
	} else {
		dynamoClient = dynamodb.NewFromConfig(awsCfg)
	}

	db := dynamo.NewDB(dynamoClient, cfg.DynamoTable)

	if cfg.Env == api.LOCAL {
		if err := db.EnsureTable(ctx); err != nil {
			return nil, fmt.Errorf("failed to create local table: %w", err)
		}
	}

	return db, nil
}

type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// getRazorpaySecret reads the key secret from the environment locally and
// from SSM Parameter Store in PROD.
func getRazorpaySecret(ctx context.Context, params parameterGetter, cfg Config) (string, error) {
	if cfg.Env == api.LOCAL || cfg.RazorpayKeySecret != "" {
		return cfg.RazorpayKeySecret, nil
	}

	out, err := params.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(cfg.RazorpaySecretParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read razorpay secret from %q: %w", cfg.RazorpaySecretParam, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %q has no value", cfg.RazorpaySecretParam)
	}

	return *out.Parameter.Value, nil
}
