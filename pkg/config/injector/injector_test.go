package injector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/items-handler/pkg/config/injector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	Table       string            `yaml:"table"`       // Interpolação direta "${env.KEY}"
	Description string            `yaml:"description"` // Texto misto
	Labels      map[string]string // Mapa tipado
	Meta        map[string]interface{}
	Nested      *NestedConfig
	Hosts       []string
	Port        int
}

type NestedConfig struct {
	DSN string
}

func TestInjector_Inject_Environment(t *testing.T) {
	t.Setenv("TABLE_NAME", "items-dev")
	t.Setenv("REGION", "us-east-1")

	target := &TestConfig{
		Table:       "${env.TABLE_NAME}",
		Description: "Service running in ${env.REGION}",
		Labels:      map[string]string{"region": "${env.REGION}"},
		Meta: map[string]interface{}{
			"table":   "${env.TABLE_NAME}",
			"timeout": 5000, // Inteiro não deve ser tocado
			"inner":   map[string]interface{}{"r": "${env.REGION}"},
		},
		Nested: &NestedConfig{DSN: "postgres://${env.REGION}.db/items"},
		Hosts:  []string{"${env.REGION}.redis:6379"},
		Port:   8080,
	}

	err := injector.New().Inject(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, "items-dev", target.Table)
	assert.Equal(t, "Service running in us-east-1", target.Description)
	assert.Equal(t, "us-east-1", target.Labels["region"])
	assert.Equal(t, "items-dev", target.Meta["table"])
	assert.Equal(t, 5000, target.Meta["timeout"])
	assert.Equal(t, "us-east-1", target.Meta["inner"].(map[string]interface{})["r"])
	assert.Equal(t, "postgres://us-east-1.db/items", target.Nested.DSN)
	assert.Equal(t, "us-east-1.redis:6379", target.Hosts[0])
	assert.Equal(t, 8080, target.Port)
}

func TestInjector_Inject_MissingEnvBecomesEmpty(t *testing.T) {
	target := &TestConfig{Table: "${env.ITEMS_HANDLER_UNDEFINED_VAR}"}

	require.NoError(t, injector.New().Inject(context.Background(), target))
	assert.Equal(t, "", target.Table)
}

func TestInjector_Inject_CustomSources(t *testing.T) {
	inj := injector.New().
		WithSource("ssm", func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, "/items/table", key)
			return "items-prod", nil
		}).
		WithSource("secret", func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, "db#dsn", key)
			return "postgres://u:p@db/items", nil
		})

	target := &TestConfig{
		Table:  "${ssm./items/table}",
		Nested: &NestedConfig{DSN: "${secret.db#dsn}"},
	}

	require.NoError(t, inj.Inject(context.Background(), target))
	assert.Equal(t, "items-prod", target.Table)
	assert.Equal(t, "postgres://u:p@db/items", target.Nested.DSN)
}

func TestInjector_Inject_SourceError(t *testing.T) {
	inj := injector.New().WithSource("ssm", func(ctx context.Context, key string) (string, error) {
		return "", errors.New("AccessDenied")
	})

	target := &TestConfig{Table: "${ssm./items/table}"}
	err := inj.Inject(context.Background(), target)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Table")
	assert.Contains(t, err.Error(), "AccessDenied")
}

func TestInjector_Inject_InvalidTarget(t *testing.T) {
	var nilCfg *TestConfig
	assert.Error(t, injector.New().Inject(context.Background(), nilCfg))
	assert.Error(t, injector.New().Inject(context.Background(), TestConfig{}))
}

func TestInjector_Inject_UnknownPatternUntouched(t *testing.T) {
	target := &TestConfig{Table: "${vault.items}"}

	require.NoError(t, injector.New().Inject(context.Background(), target))
	assert.Equal(t, "${vault.items}", target.Table)
}
