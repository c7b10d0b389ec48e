package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/raywall/items-handler/pkg/awsconf"
	"github.com/raywall/items-handler/pkg/config"
	"github.com/raywall/items-handler/pkg/dispatcher"
	"github.com/raywall/items-handler/pkg/events"
	"github.com/raywall/items-handler/pkg/logger"
	"github.com/raywall/items-handler/pkg/observability"
	"github.com/raywall/items-handler/pkg/store"
	"github.com/raywall/items-handler/pkg/transport"
	"github.com/rs/zerolog/log"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("FATAL: falha na inicialização")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logger.Configure(cfg.Logging, cfg.Service.Name)

	provider, err := observability.SetupMetrics(cfg.Metrics, cfg.Service.Name)
	if err != nil {
		return err
	}
	defer provider.Close()

	// Store e notifier são criados uma vez e compartilhados por todas as invocações
	recordStore, closeStore, err := store.New(ctx, cfg.Store, cfg.AWS.Region)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier, err := newNotifier(ctx, cfg)
	if err != nil {
		return err
	}

	d := dispatcher.New(recordStore,
		dispatcher.WithMetrics(provider),
		dispatcher.WithNotifier(notifier),
		dispatcher.WithIDGeneration(cfg.Service.GenerateIDs),
	)

	log.Info().
		Str("runtime", cfg.Service.Runtime).
		Str("backend", cfg.Store.Backend).
		Msg("items-handler iniciado")

	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(ctx, cfg.Service, d)
	case "lambda":
		lambdaStarter(transport.NewLambdaHandler(d).Handle)
		return nil
	}
	return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
}

func newNotifier(ctx context.Context, cfg *config.AppConfig) (events.Notifier, error) {
	if cfg.Events.SQSQueueURL == "" {
		return events.NoopNotifier{}, nil
	}

	awsCfg, err := awsconf.GetAWSConfig(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar config AWS: %w", err)
	}
	return events.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.Events.SQSQueueURL), nil
}
