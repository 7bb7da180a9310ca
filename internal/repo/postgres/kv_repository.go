package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const backendName = "postgres"

// Проверка, что KVRepository удовлетворяет интерфейсу KeyValueStorage.
var _ ports.KeyValueStorage = (*KVRepository)(nil)

// KVRepository — долговременное хранилище "ключ → значение" в таблице cart_storage.
// Значение хранится как text без разбора: битый снимок должен читаться так же, как был записан.
type KVRepository struct {
	pool *pgxpool.Pool
}

// NewKVRepository - конструктор KVRepository.
func NewKVRepository(pool *pgxpool.Pool) *KVRepository { return &KVRepository{pool: pool} }

// GetItem — значение по ключу; ports.ErrKeyNotFound, если строки нет.
func (r *KVRepository) GetItem(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM cart_storage WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.StorageOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		metrics.StorageOps.WithLabelValues(backendName, "get", "error").Inc()
		return nil, fmt.Errorf("select cart_storage: %w", err)
	}
	metrics.StorageOps.WithLabelValues(backendName, "get", "ok").Inc()
	return []byte(value), nil
}

// SetItem — идемпотентный upsert значения.
func (r *KVRepository) SetItem(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cart_storage (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, string(value)); err != nil {
		metrics.StorageOps.WithLabelValues(backendName, "set", "error").Inc()
		return fmt.Errorf("upsert cart_storage: %w", err)
	}
	metrics.StorageOps.WithLabelValues(backendName, "set", "ok").Inc()
	return nil
}
