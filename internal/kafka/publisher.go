package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
)

// Проверка, что SnapshotPublisher удовлетворяет интерфейсу EventPublisher.
var _ ports.EventPublisher = (*SnapshotPublisher)(nil)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// snapshotSource — откуда брать состояние корзины в момент уведомления.
type snapshotSource interface {
	Snapshot() domain.CartView
}

// SnapshotPublisher — наблюдатель корзины: после каждого изменения публикует событие cart.changed
// с полным снимком. Notify вызывается из подписчика корзины и никогда не блокируется:
// при переполненной очереди событие отбрасывается (метрика cart_events_dropped_total).
type SnapshotPublisher struct {
	writer         writer
	source         snapshotSource
	log            ports.Logger
	topic          string
	key            []byte
	publishTimeout time.Duration
	queue          chan domain.CartEvent
	now            func() time.Time
	closeOnce      sync.Once
}

// NewSnapshotPublisher — конструктор поверх kafka.Writer из конфига.
func NewSnapshotPublisher(cfg *PublisherConfig, source snapshotSource, log ports.Logger) *SnapshotPublisher {
	return newSnapshotPublisher(cfg.Writer(), cfg, source, log)
}

func newSnapshotPublisher(w writer, cfg *PublisherConfig, source snapshotSource, log ports.Logger) *SnapshotPublisher {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = 64
	}
	return &SnapshotPublisher{
		writer:         w,
		source:         source,
		log:            log,
		topic:          cfg.Topic,
		key:            []byte(cfg.Key),
		publishTimeout: timeout,
		queue:          make(chan domain.CartEvent, size),
		now:            time.Now,
	}
}

// Notify — снимает состояние корзины и ставит событие в очередь без ожидания.
func (p *SnapshotPublisher) Notify() {
	view := p.source.Snapshot()
	ev := domain.CartEvent{
		Type:          domain.EventCartChanged,
		Items:         view.Items,
		TotalQuantity: view.TotalQuantity,
		TotalPrice:    view.TotalPrice,
		OccurredAt:    p.now().UTC().Format(time.RFC3339Nano),
	}
	if ev.Items == nil {
		ev.Items = []domain.LineItem{}
	}

	select {
	case p.queue <- ev:
	default:
		metrics.CartEventsDropped.WithLabelValues("queue_full").Inc()
	}
}

// Run — пишет события из очереди в топик, пока не отменён контекст.
// Ошибка записи не останавливает цикл: событие логируется и отбрасывается,
// следующее событие всё равно несёт полный снимок.
func (p *SnapshotPublisher) Run(ctx context.Context) error {
	p.log.Infof(ctx, "cart events publisher started topic=%s", p.topic)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-p.queue:
			if err := p.publish(ctx, ev); err != nil {
				metrics.CartEventsDropped.WithLabelValues("write_failed").Inc()
				p.log.Warnf(ctx, "publish cart event failed topic=%s: %v", p.topic, err)
				continue
			}
			metrics.CartEventsPublished.WithLabelValues(p.topic).Inc()
		}
	}
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *SnapshotPublisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

func (p *SnapshotPublisher) publish(ctx context.Context, ev domain.CartEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()

	return p.writer.WriteMessages(ctxTimeout, kafka.Message{
		Key:   p.key,
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
	})
}
