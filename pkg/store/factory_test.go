package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/raywall/items-handler/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Memory(t *testing.T) {
	s, closeFn, err := New(context.Background(), config.StoreConf{Backend: "memory"}, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, closeFn())
}

func TestNew_DynamoDB(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	s, closeFn, err := New(context.Background(), config.StoreConf{
		Backend:        "dynamodb",
		TableName:      "items",
		DynamoEndpoint: "http://localhost:8000",
	}, "us-east-1")
	require.NoError(t, err)
	assert.IsType(t, &DynamoStore{}, s)
	assert.NoError(t, closeFn())
}

func TestNew_UnknownBackend(t *testing.T) {
	_, _, err := New(context.Background(), config.StoreConf{Backend: "mongo"}, "")
	assert.ErrorContains(t, err, "mongo")
}

func TestNew_RedisUnreachable(t *testing.T) {
	_, _, err := New(context.Background(), config.StoreConf{
		Backend:   "redis",
		RedisAddr: "127.0.0.1:1",
	}, "")
	assert.Error(t, err)
}

func TestNew_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, closeFn, err := New(context.Background(), config.StoreConf{
		Backend:        "redis",
		TableName:      "items",
		RedisAddr:      mr.Addr(),
		RedisKeyPrefix: "svc:",
	}, "")
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	assert.Equal(t, "svc:items:a", s.(*RedisStore).key("a"))
	assert.NoError(t, closeFn())
}
