package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBConfig carries the connection settings; empty Endpoint means the AWS default.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// ConnectDynamoDB creates a DynamoDB client for the login-flag and payment tables.
func ConnectDynamoDB(ctx context.Context, c DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, c DynamoDBConfig) (aws.Config, error) {
	region := c.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
