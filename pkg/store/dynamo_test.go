package store

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/items-handler/dyndb"
	"github.com/raywall/items-handler/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamoStore_Get(t *testing.T) {
	client := &dyndb.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "items", *params.TableName)
			assert.Equal(t, &types.AttributeValueMemberS{Value: "a"}, params.Key["id"])
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"id":   &types.AttributeValueMemberS{Value: "a"},
				"info": &types.AttributeValueMemberS{Value: "x"},
			}}, nil
		},
	}

	got, err := NewDynamoStore(client, "items").Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, record.Record{"id": "a", "info": "x"}, got)
}

func TestDynamoStore_GetAbsent(t *testing.T) {
	got, err := NewDynamoStore(&dyndb.MockDynamoClient{}, "items").Get(context.Background(), "a")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDynamoStore_GetError(t *testing.T) {
	client := &dyndb.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return nil, errors.New("ResourceNotFoundException")
		},
	}

	_, err := NewDynamoStore(client, "").Get(context.Background(), "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ResourceNotFoundException")
}

func TestDynamoStore_PutSendsRecordAsIs(t *testing.T) {
	var sent map[string]types.AttributeValue
	client := &dyndb.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			sent = params.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	err := NewDynamoStore(client, "items").Put(context.Background(), record.Record{"name": "no id"})
	require.NoError(t, err)
	assert.NotContains(t, sent, "id")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "no id"}, sent["name"])
}

func TestDynamoStore_UpdateAndDelete(t *testing.T) {
	var updated, deleted bool
	client := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			updated = true
			assert.Equal(t, &types.AttributeValueMemberS{Value: "a"}, params.Key["id"])
			assert.Contains(t, *params.UpdateExpression, "SET")
			return &dynamodb.UpdateItemOutput{}, nil
		},
		DeleteItemFn: func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			deleted = true
			assert.Equal(t, &types.AttributeValueMemberS{Value: "a"}, params.Key["id"])
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}

	s := NewDynamoStore(client, "items")
	require.NoError(t, s.Update(context.Background(), "a", map[string]any{"info": "y"}))
	require.NoError(t, s.Delete(context.Background(), "a"))
	assert.True(t, updated)
	assert.True(t, deleted)
}
