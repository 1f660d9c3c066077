package database

import (
	"context"
	"testing"
)

func TestNewAWSConfig(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), DynamoDBConfig{AccessKeyID: "local", SecretAccessKey: "local"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region, got %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), DynamoDBConfig{
		Region: "sa-east-1", AccessKeyID: "a", SecretAccessKey: "b", Endpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := client.Options()
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://localhost:8000" {
		t.Fatalf("expected base endpoint override, got %v", opts.BaseEndpoint)
	}
	if opts.Region != "sa-east-1" {
		t.Fatalf("unexpected region %q", opts.Region)
	}
}
