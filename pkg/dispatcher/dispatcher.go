// Package dispatcher traduz uma requisição (método, query e corpo) em uma
// única chamada ao RecordStore e monta a resposta JSON correspondente.
//
// Tabela de roteamento (sensível a maiúsculas):
//
//	POST   -> create (Put do corpo, 201)
//	GET    -> read   (Get por ?id=, 200 com o registro ou null)
//	PUT    -> update (sobrescreve `info` do registro `id` do corpo, 200)
//	DELETE -> delete (Delete por ?id=, 200)
//
// Qualquer outro método devolve 400 sem tocar no store.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/items-handler/pkg/events"
	"github.com/raywall/items-handler/pkg/metrics"
	"github.com/raywall/items-handler/pkg/record"
	"github.com/raywall/items-handler/pkg/store"
	"github.com/rs/zerolog"
)

// Request é a visão do dispatcher sobre a requisição de entrada.
type Request struct {
	Method          string
	QueryParameters map[string]string
	Body            string
}

// Response é sempre um JSON; Handle nunca devolve erro.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Dispatcher é imutável após New e pode ser compartilhado entre invocações.
type Dispatcher struct {
	store       store.RecordStore
	metrics     metrics.Provider
	notifier    events.Notifier
	generateIDs bool
	newID       func() string
	now         func() time.Time
}

type Option func(*Dispatcher)

func WithMetrics(p metrics.Provider) Option {
	return func(d *Dispatcher) { d.metrics = p }
}

func WithNotifier(n events.Notifier) Option {
	return func(d *Dispatcher) { d.notifier = n }
}

// WithIDGeneration faz o create atribuir um uuid quando o corpo não traz `id`.
func WithIDGeneration(enabled bool) Option {
	return func(d *Dispatcher) { d.generateIDs = enabled }
}

func New(s store.RecordStore, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    s,
		notifier: events.NoopNotifier{},
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle despacha a requisição. Falhas (inclusive panics) viram Response.
func (d *Dispatcher) Handle(ctx context.Context, req Request) (resp Response) {
	start := d.now()
	op := operationFor(req.Method)
	logger := zerolog.Ctx(ctx).With().Str("method", req.Method).Str("operation", op).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("panic ao despachar requisição")
			resp = internalError(fmt.Errorf("panic: %v", r))
		}

		if err := metrics.RecordRequest(d.metrics, op, resp.StatusCode, d.now().Sub(start)); err != nil {
			logger.Warn().Err(err).Msg("falha ao registrar métricas")
		}
	}()

	resp, err := d.route(logger.WithContext(ctx), req)
	if err != nil {
		return errorResponse(logger, err)
	}
	return resp
}

func (d *Dispatcher) route(ctx context.Context, req Request) (Response, error) {
	switch req.Method {
	case http.MethodPost:
		return d.create(ctx, req)
	case http.MethodGet:
		return d.read(ctx, req)
	case http.MethodPut:
		return d.update(ctx, req)
	case http.MethodDelete:
		return d.delete(ctx, req)
	}
	return Response{}, &RoutingError{Method: req.Method}
}

func operationFor(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodGet:
		return "read"
	case http.MethodPut:
		return "update"
	case http.MethodDelete:
		return "delete"
	}
	return "invalid"
}

// parseBody mantém a distinção entre JSON malformado (erro interno) e JSON que não é objeto (400).
func parseBody(body string) (record.Record, error) {
	rec, err := record.Parse(body)
	if errors.Is(err, record.ErrNotObject) {
		return nil, &ValidationError{Message: MsgBodyNotObject}
	}
	return rec, err
}

func (d *Dispatcher) create(ctx context.Context, req Request) (Response, error) {
	rec, err := parseBody(req.Body)
	if err != nil {
		return Response{}, err
	}

	if d.generateIDs {
		if v, present := rec[record.FieldID]; !present || v == "" {
			rec = rec.WithID(d.newID())
		}
	}

	if err := d.store.Put(ctx, rec); err != nil {
		return Response{}, err
	}

	id, _ := rec.ID()
	d.publish(ctx, events.TypeCreated, id)
	return jsonResponse(http.StatusCreated, messageBody{Message: MsgItemCreated}), nil
}

func (d *Dispatcher) read(ctx context.Context, req Request) (Response, error) {
	id := req.QueryParameters[record.FieldID]
	if id == "" {
		return Response{}, &ValidationError{Message: MsgMissingIDParam}
	}

	rec, err := d.store.Get(ctx, id)
	if err != nil {
		return Response{}, err
	}

	raw, err := rec.JSON()
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: http.StatusOK, Headers: jsonHeaders(), Body: string(raw)}, nil
}

func (d *Dispatcher) update(ctx context.Context, req Request) (Response, error) {
	rec, err := parseBody(req.Body)
	if err != nil {
		return Response{}, err
	}

	id, ok := rec.ID()
	if !ok {
		return Response{}, &ValidationError{Message: MsgMissingIDInBody}
	}

	// `info` ausente é gravado como null
	info, _ := rec.Info()
	if err := d.store.Update(ctx, id, map[string]any{record.FieldInfo: info}); err != nil {
		return Response{}, err
	}

	d.publish(ctx, events.TypeUpdated, id)
	return jsonResponse(http.StatusOK, messageBody{Message: MsgItemUpdated}), nil
}

func (d *Dispatcher) delete(ctx context.Context, req Request) (Response, error) {
	id := req.QueryParameters[record.FieldID]
	if id == "" {
		return Response{}, &ValidationError{Message: MsgMissingIDParam}
	}

	if err := d.store.Delete(ctx, id); err != nil {
		return Response{}, err
	}

	d.publish(ctx, events.TypeDeleted, id)
	return jsonResponse(http.StatusOK, messageBody{Message: MsgItemDeleted}), nil
}

func (d *Dispatcher) publish(ctx context.Context, eventType, id string) {
	if d.notifier == nil {
		return
	}
	evt := events.Event{Type: eventType, ID: id, At: d.now().UTC()}
	if err := d.notifier.Publish(ctx, evt); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("event", eventType).Str("id", id).Msg("falha ao publicar evento")
	}
}

func errorResponse(logger zerolog.Logger, err error) Response {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		logger.Debug().Str("reason", vErr.Message).Msg("requisição rejeitada")
		return jsonResponse(http.StatusBadRequest, messageBody{Message: vErr.Message})
	}

	var rErr *RoutingError
	if errors.As(err, &rErr) {
		logger.Debug().Err(err).Msg("método não suportado")
		return jsonResponse(http.StatusBadRequest, messageBody{Message: MsgInvalidMethod})
	}

	logger.Error().Err(err).Msg("falha ao processar requisição")
	return internalError(err)
}

func internalError(err error) Response {
	return jsonResponse(http.StatusInternalServerError, errorBody{Message: MsgInternalError, Error: err.Error()})
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func jsonResponse(status int, v any) Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// structs de mensagem sempre serializam
	_ = enc.Encode(v)

	return Response{
		StatusCode: status,
		Headers:    jsonHeaders(),
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}
}
