package dispatcher

import (
	"context"

	"github.com/raywall/items-handler/pkg/events"
	"github.com/raywall/items-handler/pkg/record"
	"github.com/stretchr/testify/mock"
)

// MockStore registra as chamadas feitas ao RecordStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, id string) (record.Record, error) {
	args := m.Called(ctx, id)
	if rec := args.Get(0); rec != nil {
		return rec.(record.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Put(ctx context.Context, rec record.Record) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockStore) Update(ctx context.Context, id string, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Publish(ctx context.Context, evt events.Event) error {
	return m.Called(ctx, evt).Error(0)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Count(name string, val float64, tags []string) error {
	return m.Called(name, val, tags).Error(0)
}

func (m *MockProvider) Gauge(name string, val float64, tags []string) error {
	return m.Called(name, val, tags).Error(0)
}

func (m *MockProvider) Histogram(name string, val float64, tags []string) error {
	return m.Called(name, val, tags).Error(0)
}
