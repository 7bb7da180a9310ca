package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/swiftcart/pkg/ctxmeta"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
	"github.com/Gunvolt24/swiftcart/pkg/validate"
)

// headerRequestID — заголовок, которым продюсер может передать request_id UI-события.
const headerRequestID = "request_id"

// handleMessage применяет одну команду; true — оффсет можно коммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	msgCtx := messageContext(ctx, topic, msg)

	ctxTimeout, cancel := context.WithTimeout(msgCtx, c.processTimeout)
	err := c.handler.HandleMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidCommand):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(msgCtx, "invalid cart command partition=%d offset=%d: %v (skipped)", msg.Partition, msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(msgCtx, "apply cart command partition=%d offset=%d: %v (will retry without commit)", msg.Partition, msg.Offset, err)
		return false
	}
}

// commit — ошибка коммита только логируется: в худшем случае команда применится повторно.
func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}

// messageContext — источник kafka и request_id из заголовка;
// без заголовка request_id собирается из координат сообщения.
func messageContext(ctx context.Context, topic string, msg *kafka.Message) context.Context {
	ctx = ctxmeta.WithSource(ctx, ctxmeta.SourceKafka)
	for _, h := range msg.Headers {
		if h.Key == headerRequestID && len(h.Value) > 0 {
			return ctxmeta.WithRequestID(ctx, string(h.Value))
		}
	}
	return ctxmeta.WithRequestID(ctx, fmt.Sprintf("%s/%d/%d", topic, msg.Partition, msg.Offset))
}
