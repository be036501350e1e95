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

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishStockEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := &service.StockEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		Type:         constants.EventStockDepleted,
		StockID:      "stock-1",
		ProductName:  "Pen",
		QuantityLeft: 0,
		RecordID:     "record-1",
		Actor:        "clerk@example.com",
		OccurredAt:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishStockEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventStockDepleted, received.Message.Attributes["event_type"])
	assert.Equal(t, "record-1", received.Message.Attributes["record_id"])
	assert.Equal(t, "clerk@example.com", received.Message.Attributes["actor"])
	assert.Equal(t, "2024-03-01T09:30:00Z", received.Message.PublishTime)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.StockEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Pen", decoded.ProductName)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishStockEvent(context.Background(), &service.StockEvent{Type: constants.EventRecordCreated})
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "unset discards"},
		{name: "empty provider discards", cfg: &config.PubSubConfig{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.New(slog.DiscardHandler),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestEventAttributes_OmitsEmptyFields(t *testing.T) {
	attributes := eventAttributes(&service.StockEvent{Type: constants.EventRecordCreated, StockID: "stock-1"})

	assert.Equal(t, map[string]string{
		"event_type": constants.EventRecordCreated,
		"stock_id":   "stock-1",
	}, attributes)
}

func TestDiscardPublisher(t *testing.T) {
	publisher := discardPublisher{logger: slog.New(slog.DiscardHandler)}

	assert.NoError(t, publisher.PublishStockEvent(context.Background(), &service.StockEvent{Type: constants.EventStockDepleted}))
	assert.NoError(t, publisher.Close())
}
