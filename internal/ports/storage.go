package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound — ключа нет в хранилище.
var ErrKeyNotFound = errors.New("storage: key not found")

// KeyValueStorage — долговременное хранилище "ключ → строка" (аналог localStorage).
// Требования к реализации: потокобезопасность; SetItem перезаписывает значение целиком.
type KeyValueStorage interface {
	// GetItem — вернуть значение по ключу; ErrKeyNotFound, если ключа нет.
	GetItem(ctx context.Context, key string) ([]byte, error)

	// SetItem — сохранить значение под ключом (полная перезапись).
	SetItem(ctx context.Context, key string, value []byte) error
}
