package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table, id-keyed stand-in for DynamoDB. Query supports one
// "<attr> = :<value>" key condition, which is all the repositories issue.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	err   error

	lastTable string
	lastIndex string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(av map[string]types.AttributeValue) string {
	if s, ok := av["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTable = aws.ToString(in.TableName)
	if f.err != nil {
		return nil, f.err
	}
	id := idOf(in.Item)
	if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		if _, exists := f.items[id]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTable = aws.ToString(in.TableName)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTable = aws.ToString(in.TableName)
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, idOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTable = aws.ToString(in.TableName)
	f.lastIndex = aws.ToString(in.IndexName)
	if f.err != nil {
		return nil, f.err
	}
	attr, placeholder, ok := strings.Cut(aws.ToString(in.KeyConditionExpression), " = ")
	if !ok {
		return nil, errors.New("unsupported key condition")
	}
	want, _ := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS)
	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if got, ok := item[attr].(*types.AttributeValueMemberS); ok && want != nil && got.Value == want.Value {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}
