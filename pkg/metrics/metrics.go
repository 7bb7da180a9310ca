package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Корзина.
var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart store operations",
		},
		[]string{"op"}, // add|remove|increase|decrease|clear|load
	)
	CartPersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_persist_failures_total",
			Help: "Cart snapshots that could not be written to durable storage",
		},
	)
	CartLineItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_line_items",
			Help: "Number of distinct line items in the cart",
		},
	)
	CartTotalQuantity = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_total_quantity",
			Help: "Sum of quantities over all line items",
		},
	)
)

// Хранилище.
var StorageOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storage_operations_total",
		Help: "Durable storage operations",
	},
	[]string{"backend", "op", "result"}, // result: ok|miss|error
)

// Kafka.
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	CartEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_published_total",
			Help: "Cart change events written to Kafka",
		},
		[]string{"topic"},
	)
	CartEventsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_dropped_total",
			Help: "Cart change events dropped (queue full or write failed)",
		},
		[]string{"reason"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в default registry; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CartOps, CartPersistFailures, CartLineItems, CartTotalQuantity,
			StorageOps,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CartEventsPublished, CartEventsDropped,
		)
	})
}
