package ports

import "context"

// Logger — контракт логгера для всех слоёв (корзина, транспорт, Kafka).
// Реализация берёт request_id из контекста, если он там есть.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
