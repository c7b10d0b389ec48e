package awsconf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAWSConfig_PerRegion(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_REGION", "us-east-1")
	ctx := context.Background()

	def, err := GetAWSConfig(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", def.Region)

	sa, err := GetAWSConfig(ctx, "sa-east-1")
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", sa.Region, "região pedida depois da primeira carga deve ser respeitada")

	again, err := GetAWSConfig(ctx, "sa-east-1")
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", again.Region)
}
