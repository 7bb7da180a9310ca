package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу MessageConsumer.
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что Consumer использует от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageHandler — разбирает команду корзины и применяет её.
type messageHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}

// Consumer — читает топик команд корзины (действия из удалённого UI) и применяет их по одной.
type Consumer struct {
	reader         reader
	handler        messageHandler
	log            ports.Logger
	processTimeout time.Duration
	backoff        *backoff
	closeOnce      sync.Once
}

// NewConsumer — конструктор. Оффсеты коммитятся вручную после обработки.
func NewConsumer(cfg *ConsumerConfig, handler messageHandler, log ports.Logger) *Consumer {
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}
	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 30 * time.Second
	}

	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		handler:        handler,
		log:            log,
		processTimeout: pt,
		backoff:        newBackoff(cfg.RetryInitial, rMax, time.Now().UnixNano()),
	}
}

// Run — цикл чтения до отмены контекста. Доставка at-least-once:
//   - применённая команда → коммит;
//   - невалидная команда → лог и коммит (повтор не поможет);
//   - временная ошибка → без коммита, сообщение придёт снова.
//
// Ошибки FetchMessage повторяются с экспоненциальной паузой.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "cart commands consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	var delay time.Duration
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay = c.backoff.next(delay)
			sleep := c.backoff.jitter(delay)
			c.log.Warnf(ctx, "fetch cart command failed: %v (retry in %s)", err, sleep)
			if !wait(ctx, sleep) {
				return ctx.Err()
			}
			continue
		}

		delay = 0
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commit(ctx, &msg)
			continue
		}
		if !wait(ctx, c.backoff.pause()) {
			return ctx.Err()
		}
	}
}

// Close — закрывает reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
