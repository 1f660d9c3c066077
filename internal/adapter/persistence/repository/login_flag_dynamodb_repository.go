package repository

import (
	"context"
	"time"

	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultSessionsTableName = "sessions"
	defaultSessionKey        = "fieldservice_isLoggedIn"
)

type loginFlagItem struct {
	ID        string `dynamodbav:"id"`
	LoggedIn  bool   `dynamodbav:"logged_in"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LoginFlagDynamoRepository stores the logged-in flag as a single item keyed by the
// session key, so several consoles can share one table with distinct keys.
//
// Table requirements:
//   - PK: id (string)
type LoginFlagDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	key       string
}

var _ interfaces.ILoginFlagStore = (*LoginFlagDynamoRepository)(nil)

func NewLoginFlagDynamoRepository(ddb DynamoAPI, tableName, key string) *LoginFlagDynamoRepository {
	return &LoginFlagDynamoRepository{
		ddb:       ddb,
		tableName: valueOrDefault(tableName, DefaultSessionsTableName),
		key:       valueOrDefault(key, defaultSessionKey),
	}
}

func (r *LoginFlagDynamoRepository) IsLoggedIn(ctx context.Context) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.itemKey(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it loginFlagItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	return it.LoggedIn, nil
}

func (r *LoginFlagDynamoRepository) SetLoggedIn(ctx context.Context) error {
	av, err := attributevalue.MarshalMap(loginFlagItem{
		ID:        r.key,
		LoggedIn:  true,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *LoginFlagDynamoRepository) Clear(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.itemKey(),
	})
	return err
}

func (r *LoginFlagDynamoRepository) itemKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: r.key},
	}
}
