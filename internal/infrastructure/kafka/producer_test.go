package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func newTestProducer(w messageWriter) *Producer {
	return &Producer{writer: w, logger: logger.NewNop(), cfg: &cfg.KafkaCfg{Topic: "lca.product-classified"}}
}

func decodePayload(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var s structpb.Struct
	require.NoError(t, proto.Unmarshal(data, &s))

	return s.AsMap()
}

func TestPublishClassified(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	eventID := gofakeit.UUID()

	tests := []struct {
		name string
		ev   *usecase.ClassificationEvent
		want map[string]any
	}{
		{
			name: "completed",
			ev: &usecase.ClassificationEvent{
				EventID: eventID, ProductID: 42, AccountID: "acc", Code: "ABC123",
				Status: domain.AIStatusCompleted, Category: "Furniture", SubCategory: "Chairs",
				CO2Emission: 12.5, OccurredAt: at,
			},
			want: map[string]any{
				"event_id": eventID, "event_timestamp": "2026-03-01T10:00:00Z", "product_id": "42",
				"account_id": "acc", "code": "ABC123", "status": "completed",
				"category": "Furniture", "subcategory": "Chairs", "co2_emission": 12.5,
			},
		},
		{
			name: "failed carries no classification",
			ev: &usecase.ClassificationEvent{
				EventID: eventID, ProductID: 7, AccountID: "acc", Code: "X1",
				Status: domain.AIStatusFailed, OccurredAt: at,
			},
			want: map[string]any{
				"event_id": eventID, "event_timestamp": "2026-03-01T10:00:00Z", "product_id": "7",
				"account_id": "acc", "code": "X1", "status": "failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := &fakeWriter{}
			require.NoError(t, newTestProducer(w).PublishClassified(context.Background(), tt.ev))

			require.Len(t, w.messages, 1)
			assert.Equal(t, []byte(tt.want["product_id"].(string)), w.messages[0].Key)
			assert.Equal(t, tt.want, decodePayload(t, w.messages[0].Value))
		})
	}
}

func TestPublishClassifiedWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broker down")
	err := newTestProducer(&fakeWriter{err: boom}).PublishClassified(context.Background(), &usecase.ClassificationEvent{ProductID: 1})
	assert.ErrorIs(t, err, boom)
}
