package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProvider para verificar chamadas
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

func TestRecordRequest(t *testing.T) {
	tags := []string{"operation:create", "status:201"}

	p := new(MockProvider)
	p.On("Count", Requests, 1.0, tags).Return(nil)
	p.On("Histogram", LatencyMs, 1.5, tags).Return(nil)

	err := RecordRequest(p, "create", 201, 1500*time.Microsecond)
	assert.NoError(t, err)
	p.AssertExpectations(t)
}

func TestRecordRequest_ProviderError(t *testing.T) {
	p := new(MockProvider)
	p.On("Count", Requests, 1.0, mock.Anything).Return(errors.New("udp closed"))

	err := RecordRequest(p, "read", 200, time.Millisecond)
	assert.EqualError(t, err, "udp closed")
	p.AssertNotCalled(t, "Histogram", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordRequest_NilProvider(t *testing.T) {
	assert.NoError(t, RecordRequest(nil, "read", 200, time.Millisecond))
}
