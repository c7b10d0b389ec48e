// Package store implementa o RecordStore consumido pelo dispatcher sobre os
// backends suportados (DynamoDB, memória, Redis e PostgreSQL).
package store

import (
	"context"
	"errors"

	"github.com/raywall/items-handler/pkg/record"
)

// ErrMissingKey é devolvido quando o registro não tem `id` string, espelhando a
// validação de key schema do DynamoDB.
var ErrMissingKey = errors.New("store: record is missing the string key attribute id")

// RecordStore é o contrato de persistência de item único.
type RecordStore interface {
	// Get devolve nil, nil quando o registro não existe.
	Get(ctx context.Context, id string) (record.Record, error)
	// Put sobrescreve incondicionalmente qualquer registro com o mesmo id.
	Put(ctx context.Context, rec record.Record) error
	// Update sobrescreve apenas os campos informados, criando o registro se preciso.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete não falha quando o registro não existe.
	Delete(ctx context.Context, id string) error
}

func keyOf(rec record.Record) (string, error) {
	id, ok := rec.ID()
	if !ok {
		return "", ErrMissingKey
	}
	return id, nil
}
