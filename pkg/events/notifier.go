// Package events publica eventos de alteração de itens após escritas bem
// sucedidas. A publicação nunca altera a resposta da requisição.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	TypeCreated = "item.created"
	TypeUpdated = "item.updated"
	TypeDeleted = "item.deleted"
)

// Event é o corpo JSON da mensagem publicada.
type Event struct {
	Type string    `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}

// Notifier recebe os eventos do dispatcher
type Notifier interface {
	Publish(ctx context.Context, evt Event) error
}

// NoopNotifier é usado quando nenhuma fila está configurada.
type NoopNotifier struct{}

func (NoopNotifier) Publish(context.Context, Event) error { return nil }

// SQSClient define a interface necessária para o publisher (permite Mocking)
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier envia cada evento como uma mensagem na fila configurada
type SQSNotifier struct {
	client   SQSClient
	queueUrl string
	logger   zerolog.Logger
}

func NewSQSNotifier(client SQSClient, queueUrl string) *SQSNotifier {
	return &SQSNotifier{
		client:   client,
		queueUrl: queueUrl,
		logger:   log.With().Str("component", "sqs_notifier").Logger(),
	}
}

func (n *SQSNotifier) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("events: marshal failed: %w", err)
	}

	out, err := n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueUrl),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"type": {DataType: aws.String("String"), StringValue: aws.String(evt.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("events: send to %s failed: %w", n.queueUrl, err)
	}

	n.logger.Debug().
		Str("type", evt.Type).
		Str("id", evt.ID).
		Str("message_id", aws.ToString(out.MessageId)).
		Msg("evento publicado")
	return nil
}
