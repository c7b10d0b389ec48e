// Package awsconf centraliza o carregamento da configuração AWS e a leitura de
// valores do SSM Parameter Store e do Secrets Manager.
package awsconf

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
)

var (
	awsMu   sync.Mutex
	awsCfgs = map[string]aws.Config{}
)

// GetAWSConfig carrega a configuração da AWS (env vars, profile, IAM role) uma vez por região.
// Região vazia usa a cadeia padrão do SDK (AWS_REGION, profile). Falhas não ficam em cache.
func GetAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	awsMu.Lock()
	defer awsMu.Unlock()

	if cfg, ok := awsCfgs[region]; ok {
		return cfg, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}

	if len(awsCfgs) > 0 {
		zerolog.Ctx(ctx).Debug().Str("region", cfg.Region).Msg("carregando config AWS para região adicional")
	}
	awsCfgs[region] = cfg
	return cfg, nil
}
