package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furnishop/config"
	"furnishop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:     "req-1",
		Type:          service.OrderEventPlaced,
		OrderID:       1712345678901,
		UserID:        2,
		Status:        "Pending",
		Total:         648,
		PaymentMethod: "COD",
		OccurredAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "nil config is noop", cfg: nil},
		{name: "empty provider is noop", cfg: &config.PubSubConfig{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "rabbitmq without section", cfg: &config.PubSubConfig{Provider: ProviderRabbitMQ}, wantErr: true},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: ProviderRabbitMQ, RabbitMQ: &config.RabbitMQConfig{}}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := Open(context.Background(), tt.cfg, testLogger())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(testLogger())

	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.OrderEventPlaced, received.Message.Attributes["type"])
	assert.Equal(t, "1712345678901", received.Message.Attributes["order_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, int64(1712345678901), event.OrderID)
	assert.InDelta(t, 648.0, event.Total, 0.001)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	assert.Error(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
}

func TestEventAttributes(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)
	assert.Equal(t, "2", attrs["user_id"])
	assert.NotContains(t, attrs, "request_id")
}
