package store

import (
	"context"
	"errors"

	"github.com/raywall/items-handler/dyndb"
	"github.com/raywall/items-handler/pkg/record"
)

// DynamoStore adapta o dyndb.Store genérico ao contrato RecordStore.
type DynamoStore struct {
	items dyndb.Store[record.Record]
}

// NewDynamoStore cria o store sobre a tabela informada. A chave de partição é `id`.
func NewDynamoStore(client dyndb.DynamoDBClient, tableName string) *DynamoStore {
	return &DynamoStore{
		items: dyndb.New(client, dyndb.TableConfig[record.Record]{
			TableName: tableName,
			HashKey:   record.FieldID,
		}),
	}
}

func (s *DynamoStore) Get(ctx context.Context, id string) (record.Record, error) {
	item, err := s.items.Get(ctx, id)
	if errors.Is(err, dyndb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return *item, nil
}

// Put envia o registro como veio; a validação da chave fica a cargo do DynamoDB.
func (s *DynamoStore) Put(ctx context.Context, rec record.Record) error {
	return s.items.Put(ctx, rec)
}

func (s *DynamoStore) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.items.Update(ctx, id, fields)
}

func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
