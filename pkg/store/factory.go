package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/items-handler/pkg/awsconf"
	"github.com/raywall/items-handler/pkg/config"
	"github.com/rs/zerolog/log"
)

// CloseFunc libera as conexões abertas pelo backend
type CloseFunc func() error

func noopClose() error { return nil }

// New monta o RecordStore escolhido em cfg.Backend.
func New(ctx context.Context, cfg config.StoreConf, region string) (RecordStore, CloseFunc, error) {
	logger := log.With().Str("backend", cfg.Backend).Str("table", cfg.TableName).Logger()

	switch cfg.Backend {
	case "", "dynamodb":
		awsCfg, err := awsconf.GetAWSConfig(ctx, region)
		if err != nil {
			return nil, nil, fmt.Errorf("falha ao carregar config AWS: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.DynamoEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
			}
		})
		logger.Info().Msg("record store pronto")
		return NewDynamoStore(client, cfg.TableName), noopClose, nil

	case "memory":
		logger.Warn().Msg("usando store em memória; os dados não sobrevivem ao processo")
		return NewMemoryStore(), noopClose, nil

	case "redis":
		client := NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redisstore: ping failed: %w", err)
		}
		logger.Info().Str("addr", cfg.RedisAddr).Msg("record store pronto")
		return NewRedisStore(client, cfg.RedisKeyPrefix, cfg.TableName), client.Close, nil

	case "postgres":
		db, err := OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		pg := NewPostgresStore(db, cfg.TableName)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info().Msg("record store pronto")
		return pg, db.Close, nil
	}

	return nil, nil, fmt.Errorf("backend de store desconhecido: %q", cfg.Backend)
}
