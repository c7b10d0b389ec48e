package store

import (
	"context"
	"sync"

	"github.com/raywall/items-handler/pkg/record"
)

// MemoryStore guarda os registros em um mapa protegido por mutex.
// Usado no runtime local e nos testes.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]record.Record
}

// NewMemoryStore cria um store vazio
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]record.Record)}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (record.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}

func (m *MemoryStore) Put(ctx context.Context, rec record.Record) error {
	id, err := keyOf(rec)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = clone(rec)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return ErrMissingKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.items[id]
	if !ok {
		rec = record.Record{record.FieldID: id}
	}
	for k, v := range fields {
		rec[k] = v
	}
	m.items[id] = rec
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Len devolve a quantidade de registros
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func clone(rec record.Record) record.Record {
	out := make(record.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
