package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/raywall/items-handler/pkg/record"
	"github.com/redis/go-redis/v9"
)

// RedisClient é o subconjunto do *redis.Client usado pelo store (permite Mocking)
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error
}

// maxUpdateAttempts limita as retentativas quando outro cliente altera a chave durante o WATCH.
const maxUpdateAttempts = 5

// ErrConcurrentUpdate indica que o documento mudou em todas as tentativas de update.
var ErrConcurrentUpdate = errors.New("redisstore: concurrent modification")

// RedisStore guarda cada registro como um documento JSON em `<prefix><table>:<id>`.
type RedisStore struct {
	client    RedisClient
	keyPrefix string
}

// NewRedisClient cria o cliente real a partir do endereço
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisStore(client RedisClient, prefix, tableName string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: prefix + tableName + ":",
	}
}

func (s *RedisStore) key(id string) string {
	return s.keyPrefix + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (record.Record, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: get failed: %w", err)
	}

	rec, err := decodeDoc([]byte(val))
	if err != nil {
		return nil, fmt.Errorf("redisstore: corrupted document %s: %w", id, err)
	}
	return rec, nil
}

// decodeDoc preserva números como json.Number para não perder dígitos no round trip.
func decodeDoc(raw []byte) (record.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var rec record.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RedisStore) Put(ctx context.Context, rec record.Record) error {
	id, err := keyOf(rec)
	if err != nil {
		return err
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("redisstore: marshal failed: %w", err)
	}

	if err := s.client.Set(ctx, s.key(id), doc, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: put failed: %w", err)
	}
	return nil
}

// Update faz o merge dos campos em Go dentro de uma transação otimista (WATCH/MULTI/EXEC).
// Um registro ausente é criado apenas com `id` e os campos informados.
func (s *RedisStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return ErrMissingKey
	}

	key := s.key(id)
	txf := func(tx *redis.Tx) error {
		doc := record.Record{}
		cur, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if doc, err = decodeDoc(cur); err != nil {
				return fmt.Errorf("corrupted document %s: %w", id, err)
			}
			if doc == nil {
				doc = record.Record{}
			}
		}

		for k, v := range fields {
			doc[k] = v
		}
		doc[record.FieldID] = id

		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("redisstore: update failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("redisstore: update failed: %w", ErrConcurrentUpdate)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redisstore: delete failed: %w", err)
	}
	return nil
}
