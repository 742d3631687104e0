package kafka

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// messageWriter — часть kafka.Writer, которой пользуется Producer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события о завершении классификации продуктов.
type Producer struct {
	writer messageWriter
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// PublishClassified отправляет событие, ключ сообщения — ID продукта,
// чтобы события одного продукта попадали в одну партицию.
func (p *Producer) PublishClassified(ctx context.Context, ev *usecase.ClassificationEvent) error {
	value, err := p.GetPayloadBytes(ev)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.ProductID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.EventID)},
			{Key: "status", Value: []byte(ev.Status)},
		},
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Debugf("classification event %s published for product %d", ev.EventID, ev.ProductID)

	return nil
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// GetPayloadBytes сериализует событие в google.protobuf.Struct (wire-формат protobuf).
func (p *Producer) GetPayloadBytes(ev *usecase.ClassificationEvent) ([]byte, error) {
	payload, err := structpb.NewStruct(toEventFields(ev))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return proto.Marshal(payload)
}

func toEventFields(ev *usecase.ClassificationEvent) map[string]any {
	fields := map[string]any{
		"event_id":        ev.EventID,
		"event_timestamp": ev.OccurredAt.UTC().Format(time.RFC3339Nano),
		"product_id":      strconv.FormatInt(ev.ProductID, 10),
		"account_id":      ev.AccountID,
		"code":            ev.Code,
		"status":          string(ev.Status),
	}
	if ev.Category != "" {
		fields["category"] = ev.Category
		fields["subcategory"] = ev.SubCategory
		fields["co2_emission"] = ev.CO2Emission
	}

	return fields
}
