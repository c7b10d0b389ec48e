package metrics

import (
	"fmt"
	"time"
)

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar o dispatcher.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Nomes das métricas do handler. O namespace (ex: "items.") é aplicado pelo provider.
const (
	Requests  = "requests"
	LatencyMs = "latency_ms"
)

// RecordRequest registra o contador e a latência de uma requisição despachada.
// Erros do provider são devolvidos para quem chama decidir se loga.
func RecordRequest(p Provider, operation string, status int, elapsed time.Duration) error {
	if p == nil {
		return nil
	}
	tags := []string{
		"operation:" + operation,
		fmt.Sprintf("status:%d", status),
	}

	if err := p.Count(Requests, 1, tags); err != nil {
		return err
	}
	return p.Histogram(LatencyMs, float64(elapsed.Microseconds())/1000, tags)
}
