package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
)

const backendName = "memory"

// Проверка, что Storage удовлетворяет интерфейсу KeyValueStorage.
var _ ports.KeyValueStorage = (*Storage)(nil)

// ErrQuotaExceeded — запись не помещается в квоту хранилища.
var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// Storage — хранилище "ключ → значение" в памяти процесса с квотой по байтам (как localStorage).
// quota <= 0 — без ограничения.
type Storage struct {
	quota int
	used  int

	data map[string][]byte

	mu sync.Mutex
}

// NewStorage — конструктор.
func NewStorage(quota int) *Storage {
	if quota < 0 {
		quota = 0
	}
	return &Storage{
		quota: quota,
		data:  make(map[string][]byte),
	}
}

// GetItem — возвращает копию значения, чтобы внешние изменения не попадали внутрь.
func (s *Storage) GetItem(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		metrics.StorageOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, ports.ErrKeyNotFound
	}
	metrics.StorageOps.WithLabelValues(backendName, "get", "ok").Inc()
	return cloneBytes(value), nil
}

// SetItem — перезаписывает значение; при превышении квоты старое значение остаётся.
func (s *Storage) SetItem(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newUsed := s.used - entrySize(key, s.data[key], s.has(key)) + entrySize(key, value, true)
	if s.quota > 0 && newUsed > s.quota {
		metrics.StorageOps.WithLabelValues(backendName, "set", "error").Inc()
		return fmt.Errorf("%w: need %d bytes, quota %d", ErrQuotaExceeded, newUsed, s.quota)
	}

	s.data[key] = cloneBytes(value)
	s.used = newUsed
	metrics.StorageOps.WithLabelValues(backendName, "set", "ok").Inc()
	return nil
}

// Used — занятый объём в байтах (ключи + значения).
func (s *Storage) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

// ------вспомогательные функции------

func (s *Storage) has(key string) bool {
	_, ok := s.data[key]
	return ok
}

func entrySize(key string, value []byte, present bool) int {
	if !present {
		return 0
	}
	return len(key) + len(value)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return append([]byte(nil), b...)
}
