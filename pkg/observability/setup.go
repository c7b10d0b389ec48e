// Package observability escolhe o metrics.Provider do processo.
package observability

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/items-handler/pkg/config"
	"github.com/raywall/items-handler/pkg/metrics"
	"github.com/rs/zerolog/log"
)

// NoopProvider é um placeholder para quando métricas estão desabilitadas.
type NoopProvider struct{}

func (n *NoopProvider) Count(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Gauge(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Histogram(name string, value float64, tags []string) error { return nil }
func (n *NoopProvider) Close() error                                              { return nil }

// DatadogProvider adapta o client statsd para metrics.Provider.
type DatadogProvider struct {
	client statsd.ClientInterface
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}

// Close faz o flush do buffer do statsd
func (d *DatadogProvider) Close() error {
	return d.client.Close()
}

// Provider é o metrics.Provider devolvido pelo setup, com Close para o shutdown.
type Provider interface {
	metrics.Provider
	Close() error
}

// SetupMetrics inicializa o provedor correto baseado na configuração.
// Todas as métricas recebem a tag `service:<serviceName>`.
func SetupMetrics(cfg config.MetricsConf, serviceName string) (Provider, error) {
	if !cfg.Datadog.Enabled {
		return &NoopProvider{}, nil
	}

	opts := []statsd.Option{
		statsd.WithNamespace(cfg.Datadog.Namespace),
	}
	if serviceName != "" {
		opts = append(opts, statsd.WithTags([]string{"service:" + serviceName}))
	}

	client, err := statsd.New(cfg.Datadog.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no datadog statsd: %w", err)
	}

	log.Info().
		Str("addr", cfg.Datadog.Addr).
		Str("namespace", cfg.Datadog.Namespace).
		Msg("métricas enviadas ao datadog")

	return &DatadogProvider{client: client}, nil
}
