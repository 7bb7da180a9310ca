//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — уникальные topic/group для одного теста: "<base>-<hex>" и "<base>-<hex>-g".
func UniqueTopicAndGroup(base string) (topic, group string) {
	topic = base + "-" + UniqSuffix()
	return topic, topic + "-g"
}

// EnsureTopic — создаёт топик с одной партицией (уже существующий — не ошибка) и ждёт его в метаданных.
// broker: "host:port" или "PLAINTEXT://host:port".
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := broker
	if i := strings.Index(addr, "://"); i >= 0 {
		addr = addr[i+3:]
	}

	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	controller, err := conn.Controller()
	_ = conn.Close()
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}

	return waitTopicReady(ctx, addr, topic)
}

func waitTopicReady(ctx context.Context, addr, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	for {
		conn, err := kafka.DialContext(ctx, "tcp", addr)
		if err == nil {
			parts, perr := conn.ReadPartitions(topic)
			_ = conn.Close()
			if perr == nil && len(parts) > 0 {
				return nil
			}
			err = perr
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, errors.Join(ctx.Err(), err))
		case <-tick.C:
		}
	}
}

// ReadEvents — читает из топика с начала до want сообщений или до истечения контекста.
func ReadEvents(ctx context.Context, brokers []string, topic string, want int) ([]kafka.Message, error) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MaxWait:     200 * time.Millisecond,
	})
	defer r.Close()

	out := make([]kafka.Message, 0, want)
	for len(out) < want {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, msg)
	}
	return out, nil
}
