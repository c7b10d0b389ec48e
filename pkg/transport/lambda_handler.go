package transport

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/items-handler/pkg/dispatcher"
	"github.com/rs/zerolog/log"
)

// Dispatcher é o contrato consumido pelos dois transportes
type Dispatcher interface {
	Handle(ctx context.Context, req dispatcher.Request) dispatcher.Response
}

// LambdaHandler adapta eventos do API Gateway para o dispatcher
type LambdaHandler struct {
	dispatcher Dispatcher
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(d Dispatcher) *LambdaHandler {
	return &LambdaHandler{dispatcher: d}
}

// Handle processa a requisição Lambda. Nunca devolve erro: falhas já chegam como resposta 4xx/5xx.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	// O API Gateway pode ou não normalizar o header para lowercase
	corrID := req.Headers[HeaderCorrelationID]
	if corrID == "" {
		corrID = req.Headers[http.CanonicalHeaderKey(HeaderCorrelationID)]
	}
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			logger.Warn().Err(err).Msg("corpo base64 inválido; usando conteúdo bruto")
		} else {
			body = string(decoded)
		}
	}

	resp := h.dispatcher.Handle(ctx, dispatcher.Request{
		Method:          req.HTTPMethod,
		QueryParameters: req.QueryStringParameters,
		Body:            body,
	})

	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers[HeaderCorrelationID] = corrID

	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("lambda request completed")

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       resp.Body,
	}, nil
}
