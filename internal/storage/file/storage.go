package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
)

const backendName = "file"

// Проверка, что Storage удовлетворяет интерфейсу KeyValueStorage.
var _ ports.KeyValueStorage = (*Storage)(nil)

// Storage — хранилище "ключ → значение" на диске: один файл на ключ.
// Запись атомарная (temp-файл + rename), поэтому после сбоя остаётся либо старое, либо новое значение.
type Storage struct {
	dir string
	mu  sync.Mutex
}

// NewStorage — создаёт каталог (если его нет) и возвращает хранилище.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errors.New("storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// GetItem — читает значение ключа.
func (s *Storage) GetItem(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		metrics.StorageOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		metrics.StorageOps.WithLabelValues(backendName, "get", "error").Inc()
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	metrics.StorageOps.WithLabelValues(backendName, "get", "ok").Inc()
	return raw, nil
}

// SetItem — атомарно перезаписывает значение ключа.
func (s *Storage) SetItem(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAtomic(s.path(key), value); err != nil {
		metrics.StorageOps.WithLabelValues(backendName, "set", "error").Inc()
		return fmt.Errorf("write %s: %w", key, err)
	}
	metrics.StorageOps.WithLabelValues(backendName, "set", "ok").Inc()
	return nil
}

// path — имя файла из ключа; PathEscape не даёт выйти за пределы каталога.
func (s *Storage) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *Storage) writeAtomic(path string, value []byte) (retErr error) {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
